package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truongteam/medusa-admin/internal/adapters/http/middleware"
	"github.com/truongteam/medusa-admin/internal/platform/config"
)

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:     baseURL,
		ServiceName: "store-api",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: breakerConfig(5, 2, time.Second),
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(testConfig(srv.URL))
	require.NoError(t, err)

	t.Cleanup(func() { c.http.CloseIdleConnections() })

	return c, srv
}

func closeBody(t *testing.T, resp *http.Response) {
	t.Helper()

	if err := resp.Body.Close(); err != nil {
		t.Errorf("closing response body: %v", err)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	require.ErrorContains(t, err, "config is required")

	cfg := testConfig("http://localhost")
	cfg.ServiceName = ""

	_, err = New(cfg)
	require.ErrorContains(t, err, "service name is required")
}

func TestNew_Defaults(t *testing.T) {
	cfg := testConfig("http://store.local/")
	cfg.Timeout = 0
	cfg.Retry.MaxAttempts = 0

	c, err := New(cfg)
	require.NoError(t, err)

	assert.Equal(t, "http://store.local", c.baseURL)
	assert.Equal(t, defaultTimeout, c.http.Timeout)
	assert.Equal(t, 1, c.cfg.Retry.MaxAttempts)
	assert.Equal(t, "store-api", c.ServiceName())
	assert.Equal(t, StateClosed, c.CircuitState())
}

func TestNew_AppliesTransportSettings(t *testing.T) {
	cfg := testConfig("http://store.local")
	cfg.Transport = config.TransportConfig{
		MaxIdleConns:        7,
		MaxIdleConnsPerHost: 3,
		IdleConnTimeout:     42 * time.Second,
	}

	c, err := New(cfg)
	require.NoError(t, err)

	transport, ok := c.http.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, 7, transport.MaxIdleConns)
	assert.Equal(t, 3, transport.MaxIdleConnsPerHost)
	assert.Equal(t, 42*time.Second, transport.IdleConnTimeout)
}

func TestStoreConfig_BearerToken(t *testing.T) {
	var auth atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth.Store(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := StoreConfig(
		config.StoreServiceConfig{BaseURL: srv.URL, Name: "medusa-admin", APIToken: "secret"},
		config.ClientConfig{
			Timeout:        time.Second,
			Retry:          config.RetryConfig{MaxAttempts: 1},
			CircuitBreaker: breakerConfig(5, 1, time.Second),
		},
		nil,
	)
	assert.Equal(t, "medusa-admin", cfg.ServiceName)

	c, err := New(cfg)
	require.NoError(t, err)

	resp, err := c.Get(context.Background(), "/admin/store")
	require.NoError(t, err)
	closeBody(t, resp)

	assert.Equal(t, "Bearer secret", auth.Load())
}

func TestStoreConfig_NoToken(t *testing.T) {
	cfg := StoreConfig(config.StoreServiceConfig{BaseURL: "http://x", Name: "store"}, config.ClientConfig{}, nil)

	assert.Nil(t, cfg.AuthFunc)
}

func TestClient_PropagatesIDs(t *testing.T) {
	var requestID, correlationID, accept atomic.Value

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestID.Store(r.Header.Get(middleware.HeaderRequestID))
		correlationID.Store(r.Header.Get(middleware.HeaderCorrelationID))
		accept.Store(r.Header.Get("Accept"))
		w.WriteHeader(http.StatusOK)
	})

	ctx := middleware.ContextWithRequestID(context.Background(), "req-1")
	ctx = middleware.ContextWithCorrelationID(ctx, "corr-1")

	resp, err := c.Get(ctx, "admin/products/gc_1")
	require.NoError(t, err)
	closeBody(t, resp)

	assert.Equal(t, "req-1", requestID.Load())
	assert.Equal(t, "corr-1", correlationID.Load())
	assert.Equal(t, "application/json", accept.Load())
}

func TestClient_PostSendsJSON(t *testing.T) {
	var (
		contentType atomic.Value
		body        atomic.Value
	)

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		contentType.Store(r.Header.Get("Content-Type"))
		raw, _ := io.ReadAll(r.Body)
		body.Store(string(raw))
		w.WriteHeader(http.StatusOK)
	})

	resp, err := c.Post(context.Background(), "/admin/products/gc_1", map[string]any{"type": nil})
	require.NoError(t, err)
	closeBody(t, resp)

	assert.Equal(t, "application/json", contentType.Load())
	assert.JSONEq(t, `{"type":null}`, body.Load().(string))
}

func TestClient_RetriesIdempotentRequests(t *testing.T) {
	var calls atomic.Int32

	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusOK)
	})

	resp, err := c.Get(context.Background(), "/admin/store")
	require.NoError(t, err)
	closeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_RetryResendsBody(t *testing.T) {
	var (
		calls  atomic.Int32
		bodies = make(chan string, 3)
	)

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		bodies <- string(raw)

		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
	})

	resp, err := c.Put(context.Background(), "/thing", map[string]string{"a": "b"})
	require.NoError(t, err)
	closeBody(t, resp)

	close(bodies)

	var got []string
	for b := range bodies {
		got = append(got, b)
	}

	require.Len(t, got, 2)
	assert.Equal(t, got[0], got[1])
	assert.JSONEq(t, `{"a":"b"}`, got[1])
}

func TestClient_PostIsNotRetried(t *testing.T) {
	var calls atomic.Int32

	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp, err := c.Post(context.Background(), "/admin/products/gc_1", map[string]string{"status": "published"})
	require.NoError(t, err)
	closeBody(t, resp)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_ClientErrorsAreReturned(t *testing.T) {
	var calls atomic.Int32

	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Product not found"})
	})

	resp, err := c.Get(context.Background(), "/admin/products/missing")
	require.NoError(t, err)
	closeBody(t, resp)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, StateClosed, c.CircuitState())
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := New(testConfig(url))
	require.NoError(t, err)

	_, err = c.Get(context.Background(), "/admin/store")
	require.ErrorIs(t, err, ErrMaxRetriesExceeded)
}

func TestClient_CircuitOpens(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Retry.MaxAttempts = 1
	cfg.Circuit = breakerConfig(2, 1, time.Minute)

	c, err := New(cfg)
	require.NoError(t, err)

	for range 2 {
		resp, err := c.Get(context.Background(), "/admin/store")
		require.NoError(t, err)
		closeBody(t, resp)
	}

	assert.Equal(t, StateOpen, c.CircuitState())

	_, err = c.Get(context.Background(), "/admin/store")
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_ContextCanceledDuringBackoff(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	c.cfg.Retry.InitialInterval = time.Hour
	c.cfg.Retry.MaxInterval = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Get(ctx, "/admin/store")
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrMaxRetriesExceeded)
}

func TestCalculateBackoff(t *testing.T) {
	c := &Client{cfg: &Config{Retry: config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
	}}}

	assert.Equal(t, 200*time.Millisecond, c.calculateBackoff(1))
	assert.Equal(t, 400*time.Millisecond, c.calculateBackoff(2))
	assert.Equal(t, time.Second, c.calculateBackoff(10))
}

func TestCalculateBackoff_Jitter(t *testing.T) {
	c := &Client{cfg: &Config{Retry: config.RetryConfig{
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
		JitterFactor:    0.5,
	}}}

	for range 20 {
		d := c.calculateBackoff(1)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.LessOrEqual(t, d, 300*time.Millisecond)
	}
}

func TestIsIdempotent(t *testing.T) {
	assert.True(t, isIdempotent(http.MethodGet))
	assert.True(t, isIdempotent(http.MethodDelete))
	assert.True(t, isIdempotent(http.MethodPut))
	assert.False(t, isIdempotent(http.MethodPost))
	assert.False(t, isIdempotent(http.MethodPatch))
}
