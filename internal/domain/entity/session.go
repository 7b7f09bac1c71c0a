package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the opaque backend token for one logged-in browser. It is
// created on successful login, read before every protected request and
// destroyed on explicit logout. No expiry is enforced; a stale token is only
// discovered when a backend call answers 401.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
