package impl

import (
	"context"
	"log/slog"
	"time"

	"gamevault/config"
	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/service"
	"gamevault/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCatalogPageSize = 15

// trendingWindow is how far back the trending range starts.
const trendingWindow = 30 * 24 * time.Hour

// catalogService implements the CatalogUsecase interface. It decorates the
// raw catalog client with per-viewer wishlist annotation.
type catalogService struct {
	catalog         service.CatalogService
	wishlistUsecase usecase.WishlistUsecase
	pageSize        int
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Catalog         service.CatalogService
	WishlistUsecase usecase.WishlistUsecase
	Config          *config.Config
	Logger          *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	pageSize := defaultCatalogPageSize
	if params.Config != nil && params.Config.Catalog != nil && params.Config.Catalog.PageSize > 0 {
		pageSize = params.Config.Catalog.PageSize
	}

	return &catalogService{
		catalog:         params.Catalog,
		wishlistUsecase: params.WishlistUsecase,
		pageSize:        pageSize,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search queries the catalog and marks each result with the viewer's
// wishlist state.
func (srv *catalogService) Search(ctx context.Context, query string) ([]*usecase.GameCard, error) {
	games, err := srv.catalog.Search(ctx, query, srv.pageSize)
	if err != nil {
		srv.log(ctx).Error("Catalog search failed", slog.String("query", query), slog.Any("error", err))

		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("search is temporarily unavailable")
	}

	return srv.annotate(ctx, games), nil
}

// Trending returns the most added games released in the last month.
func (srv *catalogService) Trending(ctx context.Context) ([]*usecase.GameCard, error) {
	to := time.Now()
	from := to.Add(-trendingWindow)

	games, err := srv.catalog.Trending(ctx, srv.pageSize, from, to)
	if err != nil {
		srv.log(ctx).Error("Catalog trending lookup failed", slog.Any("error", err))

		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("trending is temporarily unavailable")
	}

	return srv.annotate(ctx, games), nil
}

// Details returns the full record of one game.
func (srv *catalogService) Details(ctx context.Context, gameID int64) (*usecase.GameCard, error) {
	game, err := srv.catalog.Details(ctx, gameID)
	if err != nil {
		if errors.Is(err, service.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound
		}
		srv.log(ctx).Error("Catalog detail lookup failed", slog.Int64("gameID", gameID), slog.Any("error", err))

		return nil, domainerrors.ErrCatalogUnavailable.WrapMessage("game details are temporarily unavailable")
	}

	return &usecase.GameCard{
		Game:       game,
		Wishlisted: srv.wishlistUsecase.Contains(ctx, gameID),
	}, nil
}

// annotate joins catalog results with the viewer's wishlist in one batch.
func (srv *catalogService) annotate(ctx context.Context, games []*entity.Game) []*usecase.GameCard {
	ids := make([]int64, 0, len(games))
	for _, game := range games {
		ids = append(ids, game.ID)
	}
	wishlisted := srv.wishlistUsecase.ContainsBatch(ctx, ids)

	cards := make([]*usecase.GameCard, 0, len(games))
	for _, game := range games {
		cards = append(cards, &usecase.GameCard{
			Game:       game,
			Wishlisted: wishlisted[game.ID],
		})
	}

	return cards
}
