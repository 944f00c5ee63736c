package repository

import (
	"context"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistRepository defines the persistence operations for wishlist entries.
// All operations are keyed by (user, game); the storage enforces at most one
// entry per pair.
type WishlistRepository interface {
	// FindByUserID retrieves every entry saved by a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistEntry, error)

	// FindByUserIDLimit retrieves up to limit entries saved by a user,
	// newest first. Used for the public profile section.
	FindByUserIDLimit(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.WishlistEntry, error)

	// Insert persists a new entry. Inserting an existing (user, game) pair
	// is a no-op, keeping the add action idempotent.
	Insert(ctx context.Context, entry *entity.WishlistEntry) error

	// Delete removes the entry keyed by (user, game). Deleting a missing
	// entry is not an error.
	Delete(ctx context.Context, userID uuid.UUID, gameID int64) error

	// Exists reports whether an entry for (user, game) is present.
	Exists(ctx context.Context, userID uuid.UUID, gameID int64) (bool, error)

	// CountByUserID returns the number of entries saved by a user.
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}
