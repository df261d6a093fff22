package app

import (
	"context"
	"slices"
	"sync"

	"github.com/truongteam/medusa-admin/internal/domain"
	"github.com/truongteam/medusa-admin/internal/ports"
)

var (
	_ ports.Notifier  = (*Outbox)(nil)
	_ ports.Navigator = (*Outbox)(nil)
)

// Outbox collects what an editor session reports to its user: notifications
// until they are drained, and the last navigation request.
type Outbox struct {
	mu       sync.Mutex
	items    []domain.Notification
	location string
}

// NewOutbox creates an empty outbox.
func NewOutbox() *Outbox {
	return &Outbox{}
}

// Notify implements ports.Notifier.
func (o *Outbox) Notify(_ context.Context, n domain.Notification) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.items = append(o.items, n)
}

// GoTo implements ports.Navigator.
func (o *Outbox) GoTo(_ context.Context, path string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.location = path
}

// Drain returns the pending notifications in arrival order and empties the
// outbox.
func (o *Outbox) Drain() []domain.Notification {
	o.mu.Lock()
	defer o.mu.Unlock()

	items := o.items
	o.items = nil

	return items
}

// Pending returns the pending notifications without removing them.
func (o *Outbox) Pending() []domain.Notification {
	o.mu.Lock()
	defer o.mu.Unlock()

	return slices.Clone(o.items)
}

// Location returns the requested path, or "" if there was none.
func (o *Outbox) Location() string {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.location
}
