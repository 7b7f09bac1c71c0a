package repository

import (
	"context"

	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	"github.com/google/uuid"
)

// SessionRepository defines persistent storage for login sessions.
type SessionRepository interface {
	// Create stores a new session
	Create(ctx context.Context, session *entity.Session) error
	// GetByID retrieves a session, returning nil when it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
