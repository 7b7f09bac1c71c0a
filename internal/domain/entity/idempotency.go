package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores a processed mutating request so a duplicate
// submission (double-clicked submit button) replays the original response
// instead of hitting the backend twice.
type IdempotencyKey struct {
	ID           uuid.UUID
	Key          string
	SessionID    uuid.UUID
	Endpoint     string
	ResponseCode int
	ResponseBody string
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
