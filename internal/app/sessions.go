package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/truongteam/medusa-admin/internal/domain"
)

// DefaultMaxSessions bounds the number of open editors.
const DefaultMaxSessions = 256

// EditorFactory builds an editor for a gift card. The editor should report
// to out so the session's user sees its notifications and redirects.
type EditorFactory func(giftCardID string, out *Outbox) *Editor

// Session is an open editor addressed by an opaque id.
type Session struct {
	ID     string
	Editor *Editor
	Outbox *Outbox
}

// SessionRegistry keeps the open editors of the service.
type SessionRegistry struct {
	factory EditorFactory
	max     int
	metrics *Metrics
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// SessionRegistryConfig configures a SessionRegistry.
type SessionRegistryConfig struct {
	Factory     EditorFactory
	MaxSessions int
	Metrics     *Metrics
	Logger      *slog.Logger
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry(cfg SessionRegistryConfig) *SessionRegistry {
	if cfg.Factory == nil {
		panic("app: session registry requires an editor factory")
	}

	maxSessions := cfg.MaxSessions
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionRegistry{
		factory:  cfg.Factory,
		max:      maxSessions,
		metrics:  cfg.Metrics,
		logger:   logger.With(slog.String("component", "app.SessionRegistry")),
		sessions: make(map[string]*Session),
	}
}

// Open creates an editor for giftCardID and loads it. A failed load closes
// the session again and returns the load error.
func (r *SessionRegistry) Open(ctx context.Context, giftCardID string) (*Session, error) {
	out := NewOutbox()
	session := &Session{
		ID:     uuid.NewString(),
		Editor: r.factory(giftCardID, out),
		Outbox: out,
	}

	r.mu.Lock()
	r.purgeLocked()

	if len(r.sessions) >= r.max {
		r.mu.Unlock()
		return nil, domain.NewConflictError("editor session", fmt.Sprintf("limit of %d open editors reached", r.max))
	}

	r.sessions[session.ID] = session
	r.metrics.setSessions(len(r.sessions))
	r.mu.Unlock()

	if err := session.Editor.Load(ctx); err != nil {
		r.Close(session.ID)
		return nil, err
	}

	r.logger.DebugContext(ctx, "editor session opened",
		slog.String("session_id", session.ID),
		slog.String("gift_card_id", giftCardID),
	)

	return session, nil
}

// Get returns an open session. Sessions whose card was deleted are closed
// and reported as not found.
func (r *SessionRegistry) Get(sessionID string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok || session.Editor.Closed() {
		r.removeLocked(sessionID)
		return nil, domain.NewNotFoundError("editor session", sessionID)
	}

	return session, nil
}

// Close discards the editor of a session. Closing an unknown session is a no-op.
func (r *SessionRegistry) Close(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.sessions[sessionID]; ok {
		session.Editor.Discard()
		r.removeLocked(sessionID)
	}
}

// Len returns the number of open sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

func (r *SessionRegistry) purgeLocked() {
	for id, session := range r.sessions {
		if session.Editor.Closed() {
			delete(r.sessions, id)
		}
	}
}

func (r *SessionRegistry) removeLocked(id string) {
	delete(r.sessions, id)
	r.metrics.setSessions(len(r.sessions))
}
