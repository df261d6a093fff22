// Package app coordinates the gift card editor: it loads the card into the
// local form, sends patches to the store and reports every outcome through
// the notifier.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/truongteam/medusa-admin/internal/domain"
	"github.com/truongteam/medusa-admin/internal/platform/logging"
	"github.com/truongteam/medusa-admin/internal/ports"
)

// User-facing messages for successful mutations.
const (
	MsgUpdated = "Successfully updated Gift Card"
	MsgDeleted = "Successfully deleted Gift Card"
)

// DefaultListingPath is where the user lands after deleting a card.
const DefaultListingPath = "/a/gift-cards"

// ErrNotLoaded is returned by TogglePublish before the card was loaded.
var ErrNotLoaded = errors.New("gift card not loaded")

// EditorConfig wires an editor to its collaborators.
type EditorConfig struct {
	GiftCardID string

	Store     ports.GiftCardStore
	Settings  ports.StoreSettingsClient
	Catalog   ports.ClassificationCatalog
	Notifier  ports.Notifier
	Navigator ports.Navigator
	Decode    ports.ErrorDecoder

	// ListingPath defaults to DefaultListingPath.
	ListingPath string

	Metrics *Metrics
	Logger  *slog.Logger
	Now     func() time.Time
}

// DenominationView is what the denomination section needs from the editor.
type DenominationView struct {
	GiftCardID      string
	Denominations   []domain.Denomination
	DefaultCurrency string
}

// Editor is the mutation coordinator for a single gift card.
type Editor struct {
	id          string
	store       ports.GiftCardStore
	settings    ports.StoreSettingsClient
	catalog     ports.ClassificationCatalog
	notifier    ports.Notifier
	navigator   ports.Navigator
	decode      ports.ErrorDecoder
	listingPath string
	metrics     *Metrics
	logger      *slog.Logger
	now         func() time.Time

	form *FormState

	mu              sync.RWMutex
	defaultCurrency string
	options         []string
}

// NewEditor creates an editor. Store, Notifier, Navigator and Decode are
// required; it panics without them.
func NewEditor(cfg EditorConfig) *Editor {
	if cfg.Store == nil || cfg.Notifier == nil || cfg.Navigator == nil || cfg.Decode == nil {
		panic("app: editor requires store, notifier, navigator and error decoder")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	listing := cfg.ListingPath
	if listing == "" {
		listing = DefaultListingPath
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Editor{
		id:          cfg.GiftCardID,
		store:       cfg.Store,
		settings:    cfg.Settings,
		catalog:     cfg.Catalog,
		notifier:    cfg.Notifier,
		navigator:   cfg.Navigator,
		decode:      cfg.Decode,
		listingPath: listing,
		metrics:     cfg.Metrics,
		logger:      logger.With(slog.String("component", "app.Editor"), slog.String("gift_card_id", cfg.GiftCardID)),
		now:         now,
		form:        NewFormState(),
	}
}

// ID returns the gift card the editor works on.
func (e *Editor) ID() string { return e.id }

// Form exposes the local form state for user edits.
func (e *Editor) Form() *FormState { return e.form }

// Closed reports whether the card was deleted or the editor discarded.
func (e *Editor) Closed() bool { return e.form.Discarded() }

// Load fetches the card, the store settings and the classification options
// concurrently. Only a successful card fetch synchronizes the form; failures
// of the other two leave their previous values in place. Load never notifies.
func (e *Editor) Load(ctx context.Context) error {
	if e.Closed() {
		return domain.ErrEditorClosed
	}

	logger := e.log(ctx)
	ticket := e.form.BeginLoad()

	card, store, types := Settle3(ctx,
		func(ctx context.Context) (*domain.GiftCard, error) {
			return e.store.FetchOne(ctx, e.id)
		},
		e.fetchSettings,
		e.fetchClassifications,
	)

	if store.Err != nil {
		logger.WarnContext(ctx, "store settings unavailable", slog.Any("error", store.Err))
	} else if store.Value != nil {
		e.mu.Lock()
		e.defaultCurrency = store.Value.DefaultCurrencyCode
		e.mu.Unlock()
	}

	if types.Err != nil {
		logger.WarnContext(ctx, "classification options unavailable", slog.Any("error", types.Err))
	} else if types.Value != nil {
		e.mu.Lock()
		e.options = types.Value
		e.mu.Unlock()
	}

	e.metrics.record(OpLoad, card.Err)

	if card.Err != nil {
		logger.ErrorContext(ctx, "loading gift card failed", slog.Any("error", card.Err))
		return fmt.Errorf("loading gift card %s: %w", e.id, card.Err)
	}

	if !e.form.Apply(ticket, card.Value) {
		logger.DebugContext(ctx, "stale load dropped", slog.Uint64("ticket", uint64(ticket)))
	}

	return nil
}

// Save sends patch to the store. The outcome is notified once. A successful
// save does not touch the edit buffer.
func (e *Editor) Save(ctx context.Context, patch domain.Patch) error {
	return e.save(ctx, OpSave, patch)
}

// Submit normalizes the current form and saves it.
func (e *Editor) Submit(ctx context.Context) error {
	if e.Closed() {
		return domain.ErrEditorClosed
	}

	return e.save(ctx, OpSave, e.form.Patch())
}

// TogglePublish publishes or unpublishes the card based on its last known
// status.
func (e *Editor) TogglePublish(ctx context.Context) error {
	if e.Closed() {
		return domain.ErrEditorClosed
	}

	status, ok := e.form.Status()
	if !ok {
		return ErrNotLoaded
	}

	return e.save(ctx, OpTogglePublish, domain.TogglePatch(status))
}

// Remove deletes the card. On success the user is notified, sent to the
// listing page and the form is discarded.
func (e *Editor) Remove(ctx context.Context) error {
	if e.Closed() {
		return domain.ErrEditorClosed
	}

	logger := e.log(ctx)

	err := e.store.Delete(ctx, e.id)
	e.metrics.record(OpRemove, err)

	if err != nil {
		logger.ErrorContext(ctx, "deleting gift card failed", slog.Any("error", err))
		e.notify(ctx, e.decode(err), domain.SeverityError)

		return fmt.Errorf("deleting gift card %s: %w", e.id, err)
	}

	logger.InfoContext(ctx, "gift card deleted")
	e.notify(ctx, MsgDeleted, domain.SeveritySuccess)
	e.navigator.GoTo(ctx, e.listingPath)
	e.form.Discard()

	return nil
}

// Denominations returns the data of the denomination section.
func (e *Editor) Denominations() DenominationView {
	e.mu.RLock()
	currency := e.defaultCurrency
	e.mu.RUnlock()

	view := DenominationView{GiftCardID: e.id, DefaultCurrency: currency}
	if card := e.form.Card(); card != nil {
		view.Denominations = card.Denominations
	}

	return view
}

// AddDenominations opens the denomination modal. The modal does not exist
// yet, so this only logs.
func (e *Editor) AddDenominations(ctx context.Context) {
	e.log(ctx).InfoContext(ctx, "add denominations requested; modal not implemented")
}

// ClassificationOptions returns the known classification values.
func (e *Editor) ClassificationOptions() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return slices.Clone(e.options)
}

// Discard closes the editor without touching the store.
func (e *Editor) Discard() {
	e.form.Discard()
}

func (e *Editor) save(ctx context.Context, op string, patch domain.Patch) error {
	if e.Closed() {
		return domain.ErrEditorClosed
	}

	logger := e.log(ctx).With(slog.String("operation", op))

	updated, err := e.store.Update(ctx, e.id, patch)
	e.metrics.record(op, err)

	if err != nil {
		logger.ErrorContext(ctx, "updating gift card failed", slog.Any("error", err))
		e.notify(ctx, e.decode(err), domain.SeverityError)

		return fmt.Errorf("updating gift card %s: %w", e.id, err)
	}

	logger.InfoContext(ctx, "gift card updated")
	e.form.Refresh(updated)
	e.notify(ctx, MsgUpdated, domain.SeveritySuccess)

	return nil
}

func (e *Editor) notify(ctx context.Context, msg string, sev domain.Severity) {
	e.notifier.Notify(ctx, domain.Notification{
		GiftCardID: e.id,
		Message:    msg,
		Severity:   sev,
		At:         e.now(),
	})
}

func (e *Editor) fetchSettings(ctx context.Context) (*domain.StoreSettings, error) {
	if e.settings == nil {
		return nil, nil
	}

	return e.settings.FetchStore(ctx)
}

func (e *Editor) fetchClassifications(ctx context.Context) ([]string, error) {
	if e.catalog == nil {
		return nil, nil
	}

	return e.catalog.ListClassifications(ctx)
}

func (e *Editor) log(ctx context.Context) *slog.Logger {
	if l := logging.FromContextOr(ctx, nil); l != nil {
		return l.With(slog.String("gift_card_id", e.id))
	}

	return e.logger
}
