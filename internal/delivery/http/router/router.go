// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskboard/internal/delivery/http/middleware"
	"taskboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BoardHandler        *handler.BoardHandler
	CardHandler         *handler.CardHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	boardHandler        *handler.BoardHandler
	cardHandler         *handler.CardHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		boardHandler:        params.BoardHandler,
		cardHandler:         params.CardHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint, outside the authenticated surface
	e.GET("/health", handler.HealthCheck)

	// The whole API group sits behind the authentication gate: the gate runs
	// before route dispatch for every request entering the group, so no API
	// route is reachable without a valid token.
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.GET("/boards", r.boardHandler.ListBoards)
		api.POST("/boards", r.boardHandler.CreateBoard)
		api.GET("/boards/:id/summary", r.boardHandler.BoardSummary)
		api.DELETE("/boards/:id", r.boardHandler.DeleteBoard)

		api.GET("/boards/:id/cards", r.cardHandler.ListCards)
		api.POST("/cards", r.cardHandler.CreateCard)
		api.PATCH("/cards/:id", r.cardHandler.UpdateCard)
		api.DELETE("/cards/:id", r.cardHandler.DeleteCard)
	}
}
