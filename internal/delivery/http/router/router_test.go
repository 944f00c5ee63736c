package router

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"gamevault/internal/delivery/http/middleware"
	"gamevault/internal/delivery/http/router/handler"
	"gamevault/internal/delivery/http/view"
	"gamevault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegisteredEcho(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.Default()
	r := NewRouter(RouterParams{
		AuthHandler:      handler.NewAuthHandler(nil, nil, logger),
		CatalogHandler:   handler.NewCatalogHandler(nil, logger),
		WishlistHandler:  handler.NewWishlistHandler(nil, nil, logger),
		ProfileHandler:   handler.NewProfileHandler(nil, nil, logger),
		AuthMiddleware:   middleware.NewAuthMiddleware(nil),
		LoggerMiddleware: middleware.NewLoggerMiddleware(logger),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e
}

func registeredRoutes(e *echo.Echo) map[string]bool {
	routes := make(map[string]bool)
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = true
	}

	return routes
}

func TestRegisterRoutes_CoreRoutes(t *testing.T) {
	routes := registeredRoutes(newRegisteredEcho(t))

	for _, want := range []string{
		"GET /health",
		"POST /auth/register",
		"POST /auth/login",
		"POST /auth/logout",
		"POST /auth/logout-all",
		"POST /auth/refresh",
		"GET /fragments/nav",
		"GET /catalog/search",
		"GET /catalog/trending",
		"GET /catalog/games/:id",
		"GET /wishlist",
		"POST /wishlist/toggle/:id",
		"GET /profile",
		"GET /profile/edit",
		"POST /profile",
		"PUT /profile",
		"GET /users/:id/profile",
		"GET /users/:id/profile/qr",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

// The profile edit form is a plain HTML form, so the verb and action it
// renders must match a registered route or every save would 405.
func TestRegisterRoutes_ProfileFormVerbMatchesRoute(t *testing.T) {
	html, err := view.ProfileForm(&usecase.ProfileForm{})
	require.NoError(t, err)

	match := regexp.MustCompile(`method="([a-zA-Z]+)" action="([^"]+)"`).FindStringSubmatch(html)
	require.Len(t, match, 3, "form must declare method and action")

	method := strings.ToUpper(match[1])
	action := match[2]
	routes := registeredRoutes(newRegisteredEcho(t))

	assert.True(t, routes[method+" "+action], "form submits %s %s but no such route is registered", method, action)
	assert.Equal(t, http.MethodPost+" /profile", method+" "+action)
}
