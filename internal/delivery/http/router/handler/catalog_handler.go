package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"gamevault/internal/delivery/http/response"
	"gamevault/internal/delivery/http/view"
	"gamevault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the search, trending and detail fragments.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search renders the result grid for a catalog query. A fresher request
// simply replaces the fragment client-side; stale responses are not
// cancelled here.
func (h *CatalogHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return response.BindingError(c, "INVALID_INPUT", "Missing search query")
	}

	cards, err := h.uc.Search(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	html, err := view.GameGrid(cards)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// Trending renders the grid of recently popular games.
func (h *CatalogHandler) Trending(c echo.Context) error {
	cards, err := h.uc.Trending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	html, err := view.GameGrid(cards)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// Details renders the detail fragment shown in the game modal.
func (h *CatalogHandler) Details(c echo.Context) error {
	gameID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid game id")
	}

	card, err := h.uc.Details(c.Request().Context(), gameID)
	if err != nil {
		return errors.WithStack(err)
	}

	html, err := view.GameDetail(card)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}
