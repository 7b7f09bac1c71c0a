package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	domainRepo "github.com/auditdesk/backoffice-api/internal/domain/repository"
	"github.com/google/uuid"
)

type idempotencyRepository struct {
	db *sql.DB
}

// NewIdempotencyRepository creates a sqlite-backed idempotency repository.
func NewIdempotencyRepository(db *sql.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, sessionID uuid.UUID) (*entity.IdempotencyKey, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, key, session_id, endpoint, response_code, response_body, created_at, expires_at
		 FROM idempotency_keys WHERE key = ? AND session_id = ?`,
		key, sessionID.String(),
	)

	var (
		rawID, rawSession    string
		ikey                 entity.IdempotencyKey
		createdAt, expiresAt int64
	)
	err := row.Scan(&rawID, &ikey.Key, &rawSession, &ikey.Endpoint,
		&ikey.ResponseCode, &ikey.ResponseBody, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if ikey.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}
	if ikey.SessionID, err = uuid.Parse(rawSession); err != nil {
		return nil, err
	}
	ikey.CreatedAt = time.Unix(createdAt, 0)
	ikey.ExpiresAt = time.Unix(expiresAt, 0)
	return &ikey, nil
}

func (r *idempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	if ikey.ID == uuid.Nil {
		ikey.ID = uuid.New()
	}
	if ikey.CreatedAt.IsZero() {
		ikey.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO idempotency_keys
		 (id, key, session_id, endpoint, response_code, response_body, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ikey.ID.String(), ikey.Key, ikey.SessionID.String(), ikey.Endpoint,
		ikey.ResponseCode, ikey.ResponseBody, ikey.CreatedAt.Unix(), ikey.ExpiresAt.Unix(),
	)
	return err
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM idempotency_keys WHERE expires_at < ?`, time.Now().Unix())
	return err
}
