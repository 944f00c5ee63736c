package middleware

import (
	"net/http"
	"net/url"
	"strings"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/delivery/http/response"
	"gamevault/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AccessTokenCookie is the cookie carrying the access token for page loads.
const AccessTokenCookie = "access_token"

// RefreshTokenCookie is the cookie carrying the refresh token.
const RefreshTokenCookie = "refresh_token"

// AuthMiddleware resolves the session user for each request.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// OptionalUser resolves the current user when a valid token is present and
// otherwise lets the request continue anonymously. It never rejects a
// request; catalog pages work the same logged out.
func (m *AuthMiddleware) OptionalUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return next(c)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			// Expired or garbage token degrades to anonymous.
			return next(c)
		}

		c.Set("userID", claims.UserID)
		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireUser guards pages that only make sense logged in. Browsers get a
// redirect to the login page carrying the original path; API clients get a
// 401 envelope. Must run after OptionalUser.
func (m *AuthMiddleware) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := deliverycontext.GetUserID(c.Request().Context()); ok {
			return next(c)
		}

		if wantsHTML(c) {
			target := "/login?next=" + url.QueryEscape(c.Request().URL.Path)

			return c.Redirect(http.StatusFound, target)
		}

		return response.Unauthorized(c, "AUTH_REQUIRED", "Please log in to continue")
	}
}

// extractToken reads the access token from the Authorization header, falling
// back to the session cookie set for browser pages.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return token
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get("Accept"), "text/html")
}
