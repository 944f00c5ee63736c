// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// Catalog browsing works without one; wishlist and profile operations are
// always scoped to a User.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's email, used as the login identifier.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this account.
}

// EmailLocalPart returns the part of the user's email before the '@'.
// It is the fallback display name when a profile has no nickname.
func (u *User) EmailLocalPart() string {
	local, _, _ := strings.Cut(u.Email, "@")

	return local
}
