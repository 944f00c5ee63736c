package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds the user-editable presentation data, one row per user.
// All text fields are optional; nil means "never set", which rendering
// distinguishes from an explicitly saved empty value.
type Profile struct {
	UserID    uuid.UUID // Foreign key to the owning User.
	Nickname  *string   // Display name. Falls back to the email local part when nil.
	Username  *string   // Handle, stored lower-cased.
	Bio       *string   // Free-text biography.
	IsPublic  bool      // Whether the wishlist section is visible to other users.
	CreatedAt time.Time // Timestamp of the first save.
	UpdatedAt time.Time // Timestamp of the last save.
}

// VisibleTo reports whether the profile's wishlist section may be shown to
// the given viewer. The owner always sees their own wishlist.
func (p *Profile) VisibleTo(viewerID uuid.UUID) bool {
	return p.IsPublic || p.UserID == viewerID
}
