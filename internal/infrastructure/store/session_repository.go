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

type sessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a sqlite-backed session repository.
func NewSessionRepository(db *sql.DB) domainRepo.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, token, created_at) VALUES (?, ?, ?, ?)`,
		session.ID.String(), session.UserID, session.Token, session.CreatedAt.Unix(),
	)
	return err
}

func (r *sessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, token, created_at FROM sessions WHERE id = ?`,
		id.String(),
	)

	var (
		rawID     string
		session   entity.Session
		createdAt int64
	)
	if err := row.Scan(&rawID, &session.UserID, &session.Token, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	parsed, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	session.ID = parsed
	session.CreatedAt = time.Unix(createdAt, 0)
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id.String())
	return err
}
