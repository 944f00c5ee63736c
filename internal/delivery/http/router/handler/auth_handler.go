package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gamevault/internal/delivery/http/middleware"
	"gamevault/internal/delivery/http/response"
	"gamevault/internal/delivery/http/view"
	"gamevault/internal/domain/service"
	"gamevault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account and session handlers.
type AuthHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

type registerRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// authPayload is the session data returned to API clients. Browser pages
// rely on the cookies instead.
type authPayload struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register handles the account registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var input registerRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output)

	return response.Success(c, http.StatusCreated, toAuthPayload(output), "Account created")
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output)

	return response.Success(c, http.StatusOK, toAuthPayload(output), "Login successful")
}

// Logout ends the current session. It always succeeds from the caller's
// point of view; the cookies are cleared even when the token was already
// revoked.
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}

	if err := h.uc.Logout(c.Request().Context(), refreshToken); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// LogoutAll revokes every session of the current user, signing them out on
// all devices at once.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	if err := h.uc.LogoutAll(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookies(c)

	return response.Success(c, http.StatusOK, nil, "Logged out everywhere")
}

// Refresh rotates the refresh token into a new session.
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(middleware.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		return response.Unauthorized(c, "AUTH_REQUIRED", "No session to refresh")
	}

	output, err := h.uc.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		h.clearSessionCookies(c)

		return errors.WithStack(err)
	}

	h.setSessionCookies(c, output)

	return response.Success(c, http.StatusOK, toAuthPayload(output), "Session refreshed")
}

// Nav renders the navigation fragment for the current session state. The
// fragment fully replaces the previous nav, so repeated calls converge.
func (h *AuthHandler) Nav(c echo.Context) error {
	user, err := h.uc.CurrentUser(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	html, err := view.Nav(user)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.HTML(http.StatusOK, html)
}

func (h *AuthHandler) setSessionCookies(c echo.Context, output *usecase.AuthOutput) {
	refreshTTL := h.tokenSvc.GetRefreshTokenDuration()

	c.SetCookie(sessionCookie(middleware.AccessTokenCookie, output.AccessToken, refreshTTL))
	c.SetCookie(sessionCookie(middleware.RefreshTokenCookie, output.RefreshToken, refreshTTL))
}

func (h *AuthHandler) clearSessionCookies(c echo.Context) {
	c.SetCookie(sessionCookie(middleware.AccessTokenCookie, "", -time.Hour))
	c.SetCookie(sessionCookie(middleware.RefreshTokenCookie, "", -time.Hour))
}

func sessionCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func toAuthPayload(output *usecase.AuthOutput) authPayload {
	return authPayload{
		UserID:       output.User.ID.String(),
		Email:        output.User.Email,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}
