// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"socialgate/internal/delivery/http/router/handler"
	"socialgate/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LoginHandler        *handler.LoginHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	loginHandler        *handler.LoginHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		loginHandler:        params.LoginHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Social login routes. Providers call back with GET; native clients
	// POST their payloads.
	authGroup := e.Group("/auth/social")
	{
		authGroup.GET("/login", r.loginHandler.Login)
		authGroup.POST("/login", r.loginHandler.Login)
		authGroup.GET("/handshake", r.loginHandler.Handshake)
	}
}
