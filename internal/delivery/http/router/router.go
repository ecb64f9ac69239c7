// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"preesh/config"
	"preesh/internal/delivery/http/middleware"
	"preesh/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config        *config.Config
	AuthHandler   *handler.AuthHandler
	BeastHandler  *handler.BeastHandler
	PreeshHandler *handler.PreeshHandler
	TestHandler   *handler.TestHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg           *config.Config
	authHandler   *handler.AuthHandler
	beastHandler  *handler.BeastHandler
	preeshHandler *handler.PreeshHandler
	testHandler   *handler.TestHandler

	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		authHandler:         params.AuthHandler,
		beastHandler:        params.BeastHandler,
		preeshHandler:       params.PreeshHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/apple", r.authHandler.AppleSignIn)

		if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
			authGroup.POST("/test/token", r.testHandler.IssueToken)
		}
	}

	// Beast routes; reads are public, writes require a session
	beastGroup := e.Group("/beasts")
	{
		beastGroup.POST("", r.beastHandler.CreateBeast)
		beastGroup.GET("/:id", r.beastHandler.GetBeast)
		beastGroup.PATCH("/:id", r.beastHandler.UpdateBeast, r.authMiddleware.Authenticate)
		beastGroup.GET("/me", r.beastHandler.Me, r.authMiddleware.Authenticate, r.authMiddleware.LoadBeast)
	}

	// Preesh routes
	preeshGroup := e.Group("/preeshes")
	{
		preeshGroup.POST("", r.preeshHandler.CreatePreesh, r.authMiddleware.Authenticate)
		preeshGroup.GET("", r.preeshHandler.GetFeed)
		preeshGroup.GET("/:id", r.preeshHandler.GetPreesh)
	}
}
