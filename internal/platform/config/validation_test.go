package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "giftcard-editor",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  15 * time.Second,
			MaxRequestSize:  1048576,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: ClientConfig{
			Timeout: 30 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     5 * time.Second,
				Multiplier:      2.0,
				JitterFactor:    0.25,
			},
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 3,
			},
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Services: ServicesConfig{
			Store: StoreServiceConfig{
				BaseURL: "http://localhost:9000",
				Name:    "medusa-admin",
			},
		},
		Editor: EditorConfig{
			ListingPath: "/a/gift-cards",
			MaxSessions: 10,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		contains []string
	}{
		{
			name:     "missing app name",
			mutate:   func(c *Config) { c.App.Name = "" },
			contains: []string{"app.name is required"},
		},
		{
			name:     "invalid environment",
			mutate:   func(c *Config) { c.App.Environment = "staging" },
			contains: []string{"app.environment", "must be one of"},
		},
		{
			name:     "port out of range",
			mutate:   func(c *Config) { c.Server.Port = 70000 },
			contains: []string{"server.port must be at most 65535"},
		},
		{
			name:     "request timeout too small",
			mutate:   func(c *Config) { c.Server.RequestTimeout = time.Millisecond },
			contains: []string{"server.request_timeout"},
		},
		{
			name:     "log level is case sensitive",
			mutate:   func(c *Config) { c.Log.Level = "INFO" },
			contains: []string{"log.level"},
		},
		{
			name:     "log file enabled without path",
			mutate:   func(c *Config) { c.Log.File = LogFileConfig{Enabled: true} },
			contains: []string{"log.file.path is required when"},
		},
		{
			name:     "telemetry enabled without endpoint",
			mutate:   func(c *Config) { c.Telemetry = TelemetryConfig{Enabled: true, ServiceName: "x"} },
			contains: []string{"telemetry.endpoint"},
		},
		{
			name:     "sampling rate above one",
			mutate:   func(c *Config) { c.Telemetry.SamplingRate = 1.5 },
			contains: []string{"telemetry.sampling_rate must be at most 1"},
		},
		{
			name:     "auth enabled without editor role",
			mutate:   func(c *Config) { c.Auth = AuthConfig{Enabled: true} },
			contains: []string{"auth.editor_role"},
		},
		{
			name:     "retry attempts above limit",
			mutate:   func(c *Config) { c.Client.Retry.MaxAttempts = 11 },
			contains: []string{"client.retry.max_attempts must be at most 10"},
		},
		{
			name:     "multiplier below minimum",
			mutate:   func(c *Config) { c.Client.Retry.Multiplier = 1.0 },
			contains: []string{"client.retry.multiplier"},
		},
		{
			name:     "circuit breaker needs failures",
			mutate:   func(c *Config) { c.Client.CircuitBreaker.MaxFailures = 0 },
			contains: []string{"client.circuit_breaker.max_failures"},
		},
		{
			name:     "store base url must be a url",
			mutate:   func(c *Config) { c.Services.Store.BaseURL = "not a url" },
			contains: []string{"services.store.base_url must be a valid URL"},
		},
		{
			name:     "listing path must be absolute",
			mutate:   func(c *Config) { c.Editor.ListingPath = "gift-cards" },
			contains: []string{"editor.listing_path must start with \"/\""},
		},
		{
			name:     "max sessions minimum",
			mutate:   func(c *Config) { c.Editor.MaxSessions = -1 },
			contains: []string{"editor.max_sessions"},
		},
		{
			name: "redis enabled with bad address",
			mutate: func(c *Config) {
				c.Notifications.Redis = RedisConfig{Enabled: true, Addr: "nohost", Channel: "c"}
			},
			contains: []string{"notifications.redis.addr must be host:port"},
		},
		{
			name:     "redis enabled without channel",
			mutate:   func(c *Config) { c.Notifications.Redis = RedisConfig{Enabled: true, Addr: "localhost:6379"} },
			contains: []string{"notifications.redis.channel is required when"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)

			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestConfig_Validate_DisabledSectionsAreIgnored(t *testing.T) {
	cfg := validConfig()
	cfg.Notifications.Redis = RedisConfig{Enabled: false, Addr: "nohost"}
	cfg.Auth = AuthConfig{Enabled: false}

	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Server.Port = 0
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "config validation failed")
	assert.Contains(t, msg, "app.name")
	assert.Contains(t, msg, "server.port")
	assert.Contains(t, msg, "log.level")
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.server.port", "server.port"},
		{"Config.services.store.base_url", "services.store.base_url"},
		{"Config", "Config"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.namespace))
		})
	}
}
