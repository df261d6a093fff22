//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/truongteam/medusa-admin/internal/adapters/clients"
	"github.com/truongteam/medusa-admin/internal/adapters/clients/acl"
	apphttp "github.com/truongteam/medusa-admin/internal/adapters/http"
	"github.com/truongteam/medusa-admin/internal/adapters/http/handlers"
	"github.com/truongteam/medusa-admin/internal/adapters/notify"
	"github.com/truongteam/medusa-admin/internal/app"
	"github.com/truongteam/medusa-admin/internal/platform/config"
	"github.com/truongteam/medusa-admin/internal/ports"
)

const testToken = "sk_test_token"

// harnessT is the part of testing.TB the fixtures need, so godog scenarios
// can build them too.
type harnessT interface {
	Helper()
	Cleanup(func())
	Fatalf(format string, args ...any)
}

func init() {
	gin.SetMode(gin.TestMode)
}

// service is the editor service wired the way cmd/service wires it, in
// front of a fake store.
type service struct {
	srv      *httptest.Server
	sessions *app.SessionRegistry
	metrics  *prometheus.Registry
	client   *clients.Client
}

func clientConfig() config.ClientConfig {
	return config.ClientConfig{
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
		Transport: config.TransportConfig{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     time.Minute,
		},
	}
}

func newStoreAdapter(t harnessT, store *fakeStore, cc config.ClientConfig) (*acl.StoreAdapter, *clients.Client) {
	t.Helper()

	client, err := clients.New(clients.StoreConfig(config.StoreServiceConfig{
		BaseURL:  store.URL(),
		Name:     "medusa-admin",
		APIToken: testToken,
	}, cc, discardLogger()))
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return acl.NewStoreAdapter(acl.StoreAdapterConfig{Client: client, Logger: discardLogger()}), client
}

func newService(t harnessT, store *fakeStore) *service {
	t.Helper()

	logger := discardLogger()
	adapter, client := newStoreAdapter(t, store, clientConfig())

	health := ports.NewHealthRegistry()
	if err := health.Register(adapter); err != nil {
		t.Fatalf("registering health check: %v", err)
	}

	reg := prometheus.NewRegistry()
	metrics := app.NewMetrics(reg)

	sessions := app.NewSessionRegistry(app.SessionRegistryConfig{
		MaxSessions: 64,
		Metrics:     metrics,
		Logger:      logger,
		Factory: func(id string, out *app.Outbox) *app.Editor {
			return app.NewEditor(app.EditorConfig{
				GiftCardID: id,
				Store:      adapter,
				Settings:   adapter,
				Catalog:    adapter,
				Notifier:   notify.Fanout{out, notify.Log{Logger: logger}},
				Navigator:  out,
				Decode:     acl.DecodeError,
				Metrics:    metrics,
				Logger:     logger,
			})
		},
	})

	engine := gin.New()
	apphttp.SetupRouter(engine, apphttp.RouterConfig{
		Logger:      logger,
		ServiceName: "giftcard-editor",
		Timeout:     5 * time.Second,
		Health:      handlers.NewHealthHandler(health, reg, handlers.NewBuildInfo("giftcard-editor", "test", "", "")),
		Editor:      handlers.NewEditorHandler(sessions, logger),
	})

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return &service{srv: srv, sessions: sessions, metrics: reg, client: client}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
