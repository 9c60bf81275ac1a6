// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"alvaqth/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BoardHandler    *handler.BoardHandler
	LocationHandler *handler.LocationHandler
	OptInHandler    *handler.OptInHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	boardHandler    *handler.BoardHandler
	locationHandler *handler.LocationHandler
	optInHandler    *handler.OptInHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		boardHandler:    params.BoardHandler,
		locationHandler: params.LocationHandler,
		optInHandler:    params.OptInHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	boardGroup := apiV1.Group("/board")
	{
		boardGroup.GET("", r.boardHandler.Get)
		boardGroup.POST("/start", r.boardHandler.Start)
		boardGroup.POST("/search", r.boardHandler.Search)
		boardGroup.POST("/refresh", r.boardHandler.Refresh)
	}

	apiV1.GET("/methods", r.boardHandler.Methods)
	apiV1.DELETE("/location", r.locationHandler.Forget)

	optInGroup := apiV1.Group("/optin")
	{
		optInGroup.GET("", r.optInHandler.Get)
		optInGroup.POST("/open", r.optInHandler.Open)
		optInGroup.PUT("/contact", r.optInHandler.SetContact)
		optInGroup.POST("/next", r.optInHandler.Next)
		optInGroup.POST("/back", r.optInHandler.Back)
		optInGroup.PUT("/preferences", r.optInHandler.SetPreferences)
		optInGroup.POST("/submit", r.optInHandler.Submit)
		optInGroup.POST("/retry", r.optInHandler.Retry)
		optInGroup.POST("/close", r.optInHandler.Close)
	}
}
