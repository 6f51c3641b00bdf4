// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"budget/config"
	"budget/internal/delivery/api/middleware"
	"budget/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	TransactionHandler *handler.TransactionHandler
	CategoryHandler    *handler.CategoryHandler
	AuthMiddleware     *middleware.AuthMiddleware
	OriginGuard        *middleware.OriginGuard
	RateLimiter        *middleware.RateLimiter
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	transactionHandler *handler.TransactionHandler
	categoryHandler    *handler.CategoryHandler
	authMiddleware     *middleware.AuthMiddleware
	originGuard        *middleware.OriginGuard
	rateLimiter        *middleware.RateLimiter
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		transactionHandler: params.TransactionHandler,
		categoryHandler:    params.CategoryHandler,
		authMiddleware:     params.AuthMiddleware,
		originGuard:        params.OriginGuard,
		rateLimiter:        params.RateLimiter,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	limits := r.config.RateLimit

	e.GET("/healthz", handler.HealthCheck)

	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register,
			r.rateLimiter.ByIP("registerIp", limits.RegisterIP),
			r.rateLimiter.ByEmailFailures("registerEmail", limits.RegisterEmail),
		)
		authGroup.POST("/login", r.authHandler.Login,
			r.rateLimiter.ByIP("loginIp", limits.LoginIP),
			r.rateLimiter.ByEmailFailures("loginEmail", limits.LoginEmail),
		)
		authGroup.POST("/refresh", r.authHandler.Refresh,
			r.originGuard.Check,
			r.rateLimiter.ByIP("refreshIp", limits.RefreshIP),
		)
		authGroup.POST("/logout", r.authHandler.Logout, r.originGuard.Check)

		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.PATCH("/profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	transactionGroup := e.Group("/api/transactions")
	transactionGroup.Use(r.authMiddleware.Authenticate)
	{
		transactionGroup.GET("", r.transactionHandler.List)
		transactionGroup.POST("", r.transactionHandler.Create)
		transactionGroup.GET("/summary", r.transactionHandler.Summary)
		transactionGroup.PATCH("/:id", r.transactionHandler.Update)
		transactionGroup.DELETE("/:id", r.transactionHandler.Delete)
	}

	categoryGroup := e.Group("/api/categories")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.POST("", r.categoryHandler.Create)
	}
}
