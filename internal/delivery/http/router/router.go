// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"around/internal/delivery/http/middleware"
	"around/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CardHandler    *handler.CardHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	cardHandler    *handler.CardHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		cardHandler:    params.CardHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The public surface is exactly /signup and /signin (plus the health probe);
// every other route lives in a group carrying the auth middleware, so a new
// route cannot accidentally bypass authentication.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes (no authentication required)
	e.POST("/signup", r.userHandler.Signup)
	e.POST("/signin", r.userHandler.Signin)

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/me", r.userHandler.GetCurrentUser)
		userGroup.PATCH("/me", r.userHandler.UpdateProfile)
		userGroup.PATCH("/me/avatar", r.userHandler.UpdateAvatar)
		// Registered after /me so the static segment wins the match.
		userGroup.GET("/:userId", r.userHandler.GetUserByID)
	}

	// Card routes that require authentication
	cardGroup := e.Group("/cards")
	cardGroup.Use(r.authMiddleware.Authenticate)
	{
		cardGroup.GET("", r.cardHandler.ListCards)
		cardGroup.POST("", r.cardHandler.CreateCard)
		cardGroup.DELETE("/:cardId", r.cardHandler.DeleteCard)
		cardGroup.PUT("/:cardId/likes", r.cardHandler.LikeCard)
		cardGroup.DELETE("/:cardId/likes", r.cardHandler.UnlikeCard)
	}
}
