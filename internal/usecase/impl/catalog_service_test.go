package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gamevault/config"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/service"
	mockRepo "gamevault/internal/mocks/repository"
	mockService "gamevault/internal/mocks/service"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	catalog      *mockService.MockCatalogService
	wishlistRepo *mockRepo.MockWishlistRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	catalog := new(mockService.MockCatalogService)
	wishlistRepo := new(mockRepo.MockWishlistRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	wishlistUsecase := NewWishlistService(WishlistServiceParams{
		WishlistRepo: wishlistRepo,
		Logger:       logger,
	})
	cfg := &config.Config{}
	cfg.Catalog = &config.CatalogConfig{PageSize: 15}
	service := NewCatalogService(CatalogServiceParams{
		Catalog:         catalog,
		WishlistUsecase: wishlistUsecase,
		Config:          cfg,
		Logger:          logger,
	})

	return catalogServiceFixtures{
		service:      service,
		catalog:      catalog,
		wishlistRepo: wishlistRepo,
	}
}

func TestCatalogService_Search_AnnotatesWishlistState(t *testing.T) {
	fx := createTestCatalogService(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	games := []*entity.Game{
		{ID: 1, Name: "Hades"},
		{ID: 2, Name: "Celeste"},
	}
	fx.catalog.On("Search", ctx, "roguelike", 15).Return(games, nil)
	fx.wishlistRepo.On("Exists", ctx, userID, int64(1)).Return(true, nil)
	fx.wishlistRepo.On("Exists", ctx, userID, int64(2)).Return(false, nil)

	cards, err := fx.service.Search(ctx, "roguelike")

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.True(t, cards[0].Wishlisted)
	assert.False(t, cards[1].Wishlisted)
	assert.Equal(t, "Hades", cards[0].Game.Name)
}

func TestCatalogService_Search_AnonymousAllUnwishlisted(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalog.On("Search", ctx, "zelda", 15).
		Return([]*entity.Game{{ID: 3, Name: "Breath of the Wild"}}, nil)

	cards, err := fx.service.Search(ctx, "zelda")

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.False(t, cards[0].Wishlisted)
	fx.wishlistRepo.AssertNotCalled(t, "Exists")
}

func TestCatalogService_Search_UpstreamFailure(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalog.On("Search", ctx, "zelda", 15).Return(nil, errors.New("upstream 502"))

	_, err := fx.service.Search(ctx, "zelda")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
}

func TestCatalogService_Trending_UsesLastMonthWindow(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalog.On("Trending", ctx, 15,
		mock.MatchedBy(func(from time.Time) bool {
			return time.Since(from) > 29*24*time.Hour && time.Since(from) < 31*24*time.Hour
		}),
		mock.MatchedBy(func(to time.Time) bool {
			return time.Since(to) < time.Minute
		}),
	).Return([]*entity.Game{{ID: 9, Name: "New Hotness"}}, nil)

	cards, err := fx.service.Trending(ctx)

	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, int64(9), cards[0].Game.ID)
}

func TestCatalogService_Details(t *testing.T) {
	fx := createTestCatalogService(t)
	userID := uuid.New()
	ctx := authedContext(userID)

	game := &entity.Game{ID: 42, Name: "Hades", Description: "A roguelike dungeon crawler."}
	fx.catalog.On("Details", ctx, int64(42)).Return(game, nil)
	fx.wishlistRepo.On("Exists", ctx, userID, int64(42)).Return(true, nil)

	card, err := fx.service.Details(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, game, card.Game)
	assert.True(t, card.Wishlisted)
}

func TestCatalogService_Details_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.catalog.On("Details", ctx, int64(404)).Return(nil, service.ErrGameNotFound)

	_, err := fx.service.Details(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrGameNotFound)
}
