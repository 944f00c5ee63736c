package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/repository"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// containsBatchWorkers caps the concurrent existence checks per batch.
const containsBatchWorkers = 8

// wishlistService implements the WishlistUsecase interface. Reads degrade to
// neutral values so a storage hiccup never takes a catalog page down.
type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for wishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		logger:       params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the saved games of the current user, newest first.
func (srv *wishlistService) List(ctx context.Context) []*entity.Game {
	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return []*entity.Game{}
	}

	entries, err := srv.wishlistRepo.FindByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list wishlist", slog.Any("userID", userID), slog.Any("error", err))

		return []*entity.Game{}
	}

	return entriesToGames(entries)
}

// Add saves a snapshot of the game for the current user.
func (srv *wishlistService) Add(ctx context.Context, game *entity.Game) error {
	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	entry := &entity.WishlistEntry{
		UserID: userID,
		GameID: game.ID,
		Game:   game,
	}
	if err := srv.wishlistRepo.Insert(ctx, entry); err != nil {
		srv.log(ctx).Error("Failed to add wishlist entry",
			slog.Any("userID", userID), slog.Int64("gameID", game.ID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Wishlist entry added", slog.Any("userID", userID), slog.Int64("gameID", game.ID))

	return nil
}

// Remove deletes the current user's entry for the game. Anonymous visitors
// and storage failures count as success; removal only ever converges.
func (srv *wishlistService) Remove(ctx context.Context, gameID int64) error {
	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return nil
	}

	if err := srv.wishlistRepo.Delete(ctx, userID, gameID); err != nil {
		srv.log(ctx).Error("Failed to remove wishlist entry",
			slog.Any("userID", userID), slog.Int64("gameID", gameID), slog.Any("error", err))
	}

	return nil
}

// Contains reports whether the current user has saved the game.
func (srv *wishlistService) Contains(ctx context.Context, gameID int64) bool {
	userID, ok := deliverycontext.GetUserID(ctx)
	if !ok {
		return false
	}

	exists, err := srv.wishlistRepo.Exists(ctx, userID, gameID)
	if err != nil {
		srv.log(ctx).Warn("Failed to check wishlist entry",
			slog.Any("userID", userID), slog.Int64("gameID", gameID), slog.Any("error", err))

		return false
	}

	return exists
}

// ContainsBatch answers Contains for many games at once. Checks run through
// a bounded worker fan-out and join before returning; each check degrades to
// false on its own.
func (srv *wishlistService) ContainsBatch(ctx context.Context, gameIDs []int64) map[int64]bool {
	result := make(map[int64]bool, len(gameIDs))
	for _, id := range gameIDs {
		result[id] = false
	}

	if _, ok := deliverycontext.GetUserID(ctx); !ok || len(gameIDs) == 0 {
		return result
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, containsBatchWorkers)

	for _, id := range gameIDs {
		wg.Add(1)
		sem <- struct{}{}
		go func(gameID int64) {
			defer wg.Done()
			defer func() { <-sem }()

			exists := srv.Contains(ctx, gameID)

			mu.Lock()
			result[gameID] = exists
			mu.Unlock()
		}(id)
	}

	wg.Wait()

	return result
}

// Count returns the number of games a user has saved.
func (srv *wishlistService) Count(ctx context.Context, userID uuid.UUID) int {
	count, err := srv.wishlistRepo.CountByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Failed to count wishlist entries", slog.Any("userID", userID), slog.Any("error", err))

		return 0
	}

	return count
}

// ListPublic returns up to limit saved games of a user for the public
// profile section.
func (srv *wishlistService) ListPublic(ctx context.Context, userID uuid.UUID, limit int) []*entity.Game {
	entries, err := srv.wishlistRepo.FindByUserIDLimit(ctx, userID, limit)
	if err != nil {
		srv.log(ctx).Warn("Failed to list public wishlist", slog.Any("userID", userID), slog.Any("error", err))

		return []*entity.Game{}
	}

	return entriesToGames(entries)
}

func entriesToGames(entries []*entity.WishlistEntry) []*entity.Game {
	games := make([]*entity.Game, 0, len(entries))
	for _, entry := range entries {
		if entry.Game != nil {
			games = append(games, entry.Game)
		}
	}

	return games
}
