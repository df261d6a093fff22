// Package ports defines the contracts the gift card editor depends on.
// Adapters implement them; the application layer only sees domain types.
//
// Every blocking method takes a context first and reports failures with the
// domain error types (ErrNotFound, ErrValidation, ErrUnavailable, ...).
package ports

import (
	"context"

	"github.com/truongteam/medusa-admin/internal/domain"
)

// GiftCardStore is the remote store holding gift card products.
type GiftCardStore interface {
	// FetchOne loads the current state of a gift card.
	// Returns domain.ErrNotFound if the card does not exist.
	FetchOne(ctx context.Context, id string) (*domain.GiftCard, error)

	// Update applies a sparse patch and returns the updated card.
	// Keys missing from the patch are left untouched by the store.
	Update(ctx context.Context, id string, patch domain.Patch) (*domain.GiftCard, error)

	// Delete removes the gift card.
	Delete(ctx context.Context, id string) error
}

// StoreSettingsClient reads the store-wide configuration.
type StoreSettingsClient interface {
	FetchStore(ctx context.Context) (*domain.StoreSettings, error)
}

// ClassificationCatalog lists the known product type values.
type ClassificationCatalog interface {
	ListClassifications(ctx context.Context) ([]string, error)
}

// Notifier reports the outcome of an operation to the user.
// Implementations must not block the caller for long; delivery failures are
// theirs to log.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Navigator moves the user to another location after an operation.
type Navigator interface {
	GoTo(ctx context.Context, path string)
}

// ErrorDecoder turns a failed store call into a user-facing message.
// It never returns an empty string.
type ErrorDecoder func(err error) string
