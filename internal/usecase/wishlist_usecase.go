package usecase

import (
	"context"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the wishlist operations. The current user is
// resolved from the request context; every read degrades to a neutral value
// for anonymous visitors or backend failures instead of surfacing an error.
type WishlistUsecase interface {
	// List returns the saved games of the current user, newest first,
	// reconstructed from their stored snapshots. Anonymous visitors and
	// storage failures yield an empty slice, never an error.
	List(ctx context.Context) []*entity.Game

	// Add saves a snapshot of the game for the current user. Adding a game
	// that is already saved is a no-op. Anonymous visitors get
	// domainerrors.ErrAuthRequired, which the UI turns into a login redirect.
	Add(ctx context.Context, game *entity.Game) error

	// Remove deletes the current user's entry for the game. A missing entry,
	// an anonymous visitor, or a storage failure all count as success.
	Remove(ctx context.Context, gameID int64) error

	// Contains reports whether the current user has saved the game. The
	// answer is advisory: false on anonymous, missing, or failure.
	Contains(ctx context.Context, gameID int64) bool

	// ContainsBatch answers Contains for many games at once, checking them
	// concurrently. Each entry degrades to false independently.
	ContainsBatch(ctx context.Context, gameIDs []int64) map[int64]bool

	// Count returns the number of games a user has saved, 0 on failure.
	Count(ctx context.Context, userID uuid.UUID) int

	// ListPublic returns up to limit saved games of another user for the
	// public profile section, empty on failure.
	ListPublic(ctx context.Context, userID uuid.UUID, limit int) []*entity.Game
}
