// Command service runs the gift card editor API in front of the store's
// admin API.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/truongteam/medusa-admin/internal/adapters/clients"
	"github.com/truongteam/medusa-admin/internal/adapters/clients/acl"
	"github.com/truongteam/medusa-admin/internal/adapters/http"
	"github.com/truongteam/medusa-admin/internal/adapters/http/handlers"
	"github.com/truongteam/medusa-admin/internal/adapters/notify"
	"github.com/truongteam/medusa-admin/internal/app"
	"github.com/truongteam/medusa-admin/internal/platform/config"
	"github.com/truongteam/medusa-admin/internal/platform/logging"
	"github.com/truongteam/medusa-admin/internal/platform/telemetry"
	"github.com/truongteam/medusa-admin/internal/ports"
)

// Build-time variables, injected via ldflags:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cmp.Or(os.Getenv("APP_ENVIRONMENT"), "local"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(logging.FromConfig(cfg))
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
		slog.String("store", cfg.Services.Store.BaseURL),
	)

	tel, err := telemetry.New(ctx, telemetry.FromConfig(cfg))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if err := tel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	health := ports.NewHealthRegistry()

	httpClient, err := clients.New(clients.StoreConfig(cfg.Services.Store, cfg.Client, logger))
	if err != nil {
		return fmt.Errorf("creating store client: %w", err)
	}

	store := acl.NewStoreAdapter(acl.StoreAdapterConfig{Client: httpClient, Logger: logger})
	if err := health.Register(store); err != nil {
		return fmt.Errorf("registering store health check: %w", err)
	}

	notifiers := notify.Fanout{notify.Log{Logger: logger}}

	if rc := cfg.Notifications.Redis; rc.Enabled {
		redisNotifier := notify.NewRedisNotifier(notify.NewRedisClient(rc), rc.Channel, logger)
		defer func() {
			if err := redisNotifier.Close(); err != nil {
				logger.Warn("closing redis client", slog.Any("error", err))
			}
		}()

		if err := health.Register(redisNotifier); err != nil {
			return fmt.Errorf("registering redis health check: %w", err)
		}

		notifiers = append(notifiers, redisNotifier)
	}

	metrics := app.NewMetrics(prometheus.DefaultRegisterer)

	sessions := app.NewSessionRegistry(app.SessionRegistryConfig{
		MaxSessions: cfg.Editor.MaxSessions,
		Metrics:     metrics,
		Logger:      logger,
		Factory: func(giftCardID string, out *app.Outbox) *app.Editor {
			return app.NewEditor(app.EditorConfig{
				GiftCardID:  giftCardID,
				Store:       store,
				Settings:    store,
				Catalog:     store,
				Notifier:    append(notify.Fanout{out}, notifiers...),
				Navigator:   out,
				Decode:      acl.DecodeError,
				ListingPath: cfg.Editor.ListingPath,
				Metrics:     metrics,
				Logger:      logger,
			})
		},
	})

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:      logger,
		ServiceName: cfg.App.Name,
		Auth:        &cfg.Auth,
		Timeout:     cfg.Server.RequestTimeout,
		Health:      handlers.NewHealthHandler(health, prometheus.DefaultGatherer, handlers.NewBuildInfo(cfg.App.Name, Version, Commit, BuildTime)),
		Editor:      handlers.NewEditorHandler(sessions, logger),
	})

	if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
