// Package notify fans editor notifications out to Redis and to log or terminal writers.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/truongteam/medusa-admin/internal/domain"
	"github.com/truongteam/medusa-admin/internal/platform/config"
)

// redisClient is the subset of *redis.Client the notifier uses.
type redisClient interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Event is the JSON payload published for every notification.
type Event struct {
	GiftCardID string    `json:"gift_card_id"`
	Message    string    `json:"message"`
	Severity   string    `json:"severity"`
	At         time.Time `json:"at"`
}

// RedisNotifier publishes notifications to a Redis pub/sub channel.
// Publish failures are logged and never reach the editor.
type RedisNotifier struct {
	client  redisClient
	channel string
	logger  *slog.Logger
}

// NewRedisClient creates a client from config.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewRedisNotifier creates a notifier publishing on channel.
func NewRedisNotifier(client redisClient, channel string, logger *slog.Logger) *RedisNotifier {
	if channel == "" {
		channel = config.DefaultRedisChannel
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &RedisNotifier{
		client:  client,
		channel: channel,
		logger:  logger.With(slog.String("component", "notify.RedisNotifier")),
	}
}

// Notify implements ports.Notifier.
func (r *RedisNotifier) Notify(ctx context.Context, n domain.Notification) {
	payload, err := json.Marshal(Event{
		GiftCardID: n.GiftCardID,
		Message:    n.Message,
		Severity:   string(n.Severity),
		At:         n.At.UTC(),
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "encoding notification", slog.Any("error", err))
		return
	}

	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		r.logger.WarnContext(ctx, "publishing notification failed",
			slog.String("channel", r.channel),
			slog.String("gift_card_id", n.GiftCardID),
			slog.Any("error", err),
		)
	}
}

// Name implements ports.HealthChecker.
func (r *RedisNotifier) Name() string {
	return "redis-notifier"
}

// Check implements ports.HealthChecker.
func (r *RedisNotifier) Check(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *RedisNotifier) Close() error {
	return r.client.Close()
}
