package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/truongteam/medusa-admin/internal/adapters/http/handlers"
	"github.com/truongteam/medusa-admin/internal/adapters/http/middleware"
	"github.com/truongteam/medusa-admin/internal/platform/config"
	"github.com/truongteam/medusa-admin/internal/platform/telemetry"
)

// RouterConfig holds what SetupRouter wires.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	// Auth guards the editor routes; nil or disabled leaves them open.
	Auth *config.AuthConfig

	// Timeout bounds each API request. Zero disables it.
	Timeout time.Duration

	Health *handlers.HealthHandler
	Editor *handlers.EditorHandler
}

// SetupRouter installs the middleware chain and the routes. Middleware runs
// in this order:
//  1. Recovery
//  2. context logger, request id, correlation id
//  3. OpenTelemetry tracing and request metrics
//  4. request logging, which skips /-/
//
// The /-/ probes need no auth and have no timeout. The editor API lives
// under /api/v1.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)
	engine.Use(telemetry.Middleware(cfg.ServiceName)...)
	engine.Use(middleware.Logging(cfg.Logger))

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(engine)
	}

	api := engine.Group("/api/v1", middleware.Timeout(cfg.Timeout))
	api.Use(middleware.EditorAccess(cfg.Auth)...)

	if cfg.Editor != nil {
		cfg.Editor.RegisterRoutes(api)
	}
}
