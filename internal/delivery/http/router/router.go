// Package router contains routing setup for the HTTP delivery.
package router

import (
	"log/slog"

	"voll/config"
	"voll/internal/delivery/http/middleware"
	"voll/internal/delivery/http/router/handler"
	"voll/internal/domain/service"
	"voll/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and optional collaborators the routes need, injected by Fx.
type RouterParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	DoctorHandler *handler.DoctorHandler
	HealthHandler *handler.HealthHandler
	TokenService  service.TokenService
	RateLimiter   service.RateLimiter `optional:"true"`
	Metrics       *metrics.Metrics    `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	doctorHandler  *handler.DoctorHandler
	healthHandler  *handler.HealthHandler
	metrics        *metrics.Metrics
	authMiddleware *middleware.AuthMiddleware
	rateLimit      *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Auth and rate limiting are attached only when configured.
func NewRouter(params RouterParams) *router {
	r := &router{
		cfg:           params.Config,
		doctorHandler: params.DoctorHandler,
		healthHandler: params.HealthHandler,
		metrics:       params.Metrics,
	}

	if params.Config.Auth != nil && params.Config.Auth.Enabled && params.TokenService != nil {
		r.authMiddleware = middleware.NewAuthMiddleware(params.TokenService)
	}

	if params.RateLimiter != nil {
		var recorder middleware.RateLimitRecorder
		if params.Metrics != nil {
			recorder = params.Metrics
		}
		r.rateLimit = middleware.NewRateLimitMiddleware(params.RateLimiter, recorder, params.Logger)
	}

	return r
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.metrics != nil && r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET(r.cfg.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	doctorGroup := e.Group("/medicos")
	if r.rateLimit != nil {
		doctorGroup.Use(r.rateLimit.Limit)
	}
	if r.authMiddleware != nil {
		doctorGroup.Use(r.authMiddleware.Authenticate)
	}
	{
		doctorGroup.POST("", r.doctorHandler.Register)
		doctorGroup.GET("", r.doctorHandler.List)
		doctorGroup.PUT("", r.doctorHandler.Update)
		doctorGroup.GET("/:id", r.doctorHandler.Get)
		doctorGroup.DELETE("/:id", r.doctorHandler.Deactivate)
	}
}
