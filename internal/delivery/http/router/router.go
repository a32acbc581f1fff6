// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wayfare/internal/delivery/http/middleware"
	"wayfare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	TripHandler     *handler.TripHandler
	PlaceHandler    *handler.PlaceHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	tripHandler     *handler.TripHandler
	placeHandler    *handler.PlaceHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		tripHandler:     params.TripHandler,
		placeHandler:    params.PlaceHandler,
		favoriteHandler: params.FavoriteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session minting is the only unauthenticated endpoint besides health.
	e.POST("/session", r.sessionHandler.CreateSession)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.GET("/places", r.placeHandler.SearchPlaces)

		api.POST("/routes/plan", r.tripHandler.PlanRoute)
		api.GET("/routes/history", r.tripHandler.GetRouteHistory)

		api.POST("/favorites", r.favoriteHandler.AddFavorite)
		api.GET("/favorites", r.favoriteHandler.ListFavorites)
		api.DELETE("/favorites", r.favoriteHandler.ClearFavorites)
		api.GET("/favorites/:poiID/status", r.favoriteHandler.GetFavoriteStatus)
		api.PUT("/favorites/:poiID/notes", r.favoriteHandler.UpdateNotes)
		api.DELETE("/favorites/:poiID", r.favoriteHandler.RemoveFavorite)
	}
}
