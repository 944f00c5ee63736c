package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/delivery/http/response"
	"gamevault/internal/delivery/http/view"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/service"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the profile view/edit fragments and the share QR.
type ProfileHandler struct {
	uc        usecase.ProfileUsecase
	qrService service.QRCodeService
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, qrService service.QRCodeService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:        uc,
		qrService: qrService,
		logger:    logger,
	}
}

// Own renders the current user's profile view fragment.
func (h *ProfileHandler) Own(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c.Request().Context())
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	return h.renderView(c, userID)
}

// Show renders another user's profile view fragment, with the wishlist
// section subject to the visibility rule.
func (h *ProfileHandler) Show(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	return h.renderView(c, userID)
}

// Edit renders the edit form with the raw stored values.
func (h *ProfileHandler) Edit(c echo.Context) error {
	form, err := h.uc.LoadForEdit(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	html, err := view.ProfileForm(form)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

type saveProfileRequest struct {
	Nickname string `json:"nickname" form:"nickname"`
	Username string `json:"username" form:"username"`
	Bio      string `json:"bio" form:"bio"`
	IsPublic bool   `json:"is_public" form:"is_public"`
}

// Save persists the submitted profile and responds with the re-rendered
// view fragment so the page and nav re-sync in one round trip.
func (h *ProfileHandler) Save(c echo.Context) error {
	var input saveProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	profile, err := h.uc.Save(c.Request().Context(), usecase.SaveProfileInput{
		Nickname: input.Nickname,
		Username: input.Username,
		Bio:      input.Bio,
		IsPublic: input.IsPublic,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	html, err := view.ProfileView(profile)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

// ShareQR serves a PNG QR code linking to the user's public profile page.
func (h *ProfileHandler) ShareQR(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user id")
	}

	png, err := h.qrService.GenerateProfileQR(userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *ProfileHandler) renderView(c echo.Context, userID uuid.UUID) error {
	profile, err := h.uc.Load(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	html, err := view.ProfileView(profile)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}
