package usecase

import (
	"context"

	"gamevault/internal/domain/entity"
)

// GameCard pairs a catalog game with its wishlist state for the current
// viewer, ready for card rendering.
type GameCard struct {
	Game       *entity.Game
	Wishlisted bool
}

// CatalogUsecase defines the read-only catalog operations, annotated with
// per-viewer wishlist state.
type CatalogUsecase interface {
	// Search queries the catalog and marks each result with whether the
	// current user has it wishlisted.
	Search(ctx context.Context, query string) ([]*GameCard, error)

	// Trending returns the most popular games released in the last month.
	Trending(ctx context.Context) ([]*GameCard, error)

	// Details returns the full record of one game, including description
	// and platforms.
	Details(ctx context.Context, gameID int64) (*GameCard, error)
}
