package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/delivery/http/response"
	"gamevault/internal/delivery/http/view"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// WishlistHandler serves the wishlist page fragment and the toggle action.
type WishlistHandler struct {
	wishlistUC usecase.WishlistUsecase
	catalogUC  usecase.CatalogUsecase
	logger     *slog.Logger
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(wishlistUC usecase.WishlistUsecase, catalogUC usecase.CatalogUsecase, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlistUC: wishlistUC,
		catalogUC:  catalogUC,
		logger:     logger,
	}
}

// List renders the wishlist page fragment: a grid of the saved games, or the
// empty state when nothing is saved.
func (h *WishlistHandler) List(c echo.Context) error {
	games := h.wishlistUC.List(c.Request().Context())

	if len(games) == 0 {
		html, err := view.WishlistEmpty()
		if err != nil {
			return errors.WithStack(err)
		}

		return c.HTML(http.StatusOK, html)
	}

	cards := make([]*usecase.GameCard, 0, len(games))
	for _, game := range games {
		// Everything listed here is wishlisted by definition.
		cards = append(cards, &usecase.GameCard{Game: game, Wishlisted: true})
	}

	html, err := view.GameGrid(cards)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// togglePayload reports the wishlist state after a toggle so the client can
// swap the button.
type togglePayload struct {
	GameID     int64 `json:"game_id"`
	Wishlisted bool  `json:"wishlisted"`
}

// Toggle flips the wishlist state of a game for the current user. Anonymous
// visitors get the distinct auth-required error that the client turns into a
// login redirect.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	gameID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game id")
	}

	ctx := c.Request().Context()
	if _, ok := deliverycontext.GetUserID(ctx); !ok {
		return domainerrors.ErrAuthRequired
	}

	if h.wishlistUC.Contains(ctx, gameID) {
		if err := h.wishlistUC.Remove(ctx, gameID); err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, togglePayload{GameID: gameID}, "Removed from wishlist")
	}

	// The snapshot is taken from the catalog at the moment of the add.
	card, err := h.catalogUC.Details(ctx, gameID)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := h.wishlistUC.Add(ctx, card.Game); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, togglePayload{GameID: gameID, Wishlisted: true}, "Added to wishlist")
}
