package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/truongteam/medusa-admin/internal/domain"
	"github.com/truongteam/medusa-admin/internal/ports"
)

// Fanout delivers every notification to all of its notifiers in order.
type Fanout []ports.Notifier

// Notify implements ports.Notifier.
func (f Fanout) Notify(ctx context.Context, n domain.Notification) {
	for _, notifier := range f {
		if notifier != nil {
			notifier.Notify(ctx, n)
		}
	}
}

// Log writes notifications to a structured logger.
type Log struct {
	Logger *slog.Logger
}

// Notify implements ports.Notifier.
func (l Log) Notify(ctx context.Context, n domain.Notification) {
	level := slog.LevelInfo
	if n.Severity == domain.SeverityError {
		level = slog.LevelWarn
	}

	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.Log(ctx, level, "notification",
		slog.String("gift_card_id", n.GiftCardID),
		slog.String("severity", string(n.Severity)),
		slog.String("message", n.Message),
	)
}

// Printer writes notifications and navigation requests as plain lines.
type Printer struct {
	W io.Writer
}

// Notify implements ports.Notifier.
func (p Printer) Notify(_ context.Context, n domain.Notification) {
	_, _ = fmt.Fprintf(p.W, "[%s] %s\n", n.Severity, n.Message)
}

// GoTo implements ports.Navigator.
func (p Printer) GoTo(_ context.Context, path string) {
	_, _ = fmt.Fprintf(p.W, "-> %s\n", path)
}
