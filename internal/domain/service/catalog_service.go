package service

import (
	"context"
	"errors"
	"time"

	"gamevault/internal/domain/entity"
)

// ErrGameNotFound is returned by Details when the catalog has no record for
// the requested id.
var ErrGameNotFound = errors.New("game not found")

// CatalogService abstracts the external read-only game database.
type CatalogService interface {
	// Search returns up to pageSize games matching the query.
	Search(ctx context.Context, query string, pageSize int) ([]*entity.Game, error)

	// Details returns the full record for a single game, including its
	// long-form description.
	Details(ctx context.Context, gameID int64) (*entity.Game, error)

	// Trending returns up to pageSize games released inside [from, to],
	// ordered by catalog popularity.
	Trending(ctx context.Context, pageSize int, from, to time.Time) ([]*entity.Game, error)
}
