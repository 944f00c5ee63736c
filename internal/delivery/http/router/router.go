// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gamevault/internal/delivery/http/middleware"
	"gamevault/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CatalogHandler   *handler.CatalogHandler
	WishlistHandler  *handler.WishlistHandler
	ProfileHandler   *handler.ProfileHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	catalogHandler   *handler.CatalogHandler
	wishlistHandler  *handler.WishlistHandler
	profileHandler   *handler.ProfileHandler
	authMiddleware   *middleware.AuthMiddleware
	loggerMiddleware *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		catalogHandler:   params.CatalogHandler,
		wishlistHandler:  params.WishlistHandler,
		profileHandler:   params.ProfileHandler,
		authMiddleware:   params.AuthMiddleware,
		loggerMiddleware: params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application. Every route
// runs behind the optional-user resolution; only the pages that make no
// sense logged out additionally require a user.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)
	e.Use(r.authMiddleware.OptionalUser)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, r.authMiddleware.RequireUser)
		authGroup.POST("/refresh", r.authHandler.Refresh)
	}

	// Shared page fragments
	e.GET("/fragments/nav", r.authHandler.Nav)

	// Catalog routes work the same logged in or out.
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/search", r.catalogHandler.Search)
		catalogGroup.GET("/trending", r.catalogHandler.Trending)
		catalogGroup.GET("/games/:id", r.catalogHandler.Details)
	}

	// Wishlist routes. The toggle stays open so an anonymous click gets the
	// distinct auth-required answer instead of a blind redirect.
	e.GET("/wishlist", r.wishlistHandler.List, r.authMiddleware.RequireUser)
	e.POST("/wishlist/toggle/:id", r.wishlistHandler.Toggle)

	// Profile routes
	e.GET("/profile", r.profileHandler.Own, r.authMiddleware.RequireUser)
	e.GET("/profile/edit", r.profileHandler.Edit, r.authMiddleware.RequireUser)
	// The edit form submits a plain POST; PUT stays registered for API callers.
	e.POST("/profile", r.profileHandler.Save, r.authMiddleware.RequireUser)
	e.PUT("/profile", r.profileHandler.Save, r.authMiddleware.RequireUser)
	e.GET("/users/:id/profile", r.profileHandler.Show)
	e.GET("/users/:id/profile/qr", r.profileHandler.ShareQR)
}
