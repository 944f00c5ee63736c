package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session. Only the
// hash of the issued token is stored; deleting the row ends the session.
type RefreshToken struct {
	ID        uuid.UUID // The unique identifier for this session.
	UserID    uuid.UUID // The user this session belongs to.
	TokenHash string    // SHA-256 hash of the issued refresh token.
	ExpiresAt time.Time // When this session stops being accepted.
	CreatedAt time.Time // When this session was established.
}
