package acl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"slices"

	"github.com/truongteam/medusa-admin/internal/adapters/clients"
	"github.com/truongteam/medusa-admin/internal/domain"
	"github.com/truongteam/medusa-admin/internal/platform/logging"
)

// Store admin API paths.
const (
	productsPath     = "/admin/products/"
	storePath        = "/admin/store"
	productTypesPath = "/admin/products/types"
)

// StoreAdapter talks to the commerce store admin API. It implements
// ports.GiftCardStore, ports.StoreSettingsClient, ports.ClassificationCatalog
// and ports.HealthChecker.
type StoreAdapter struct {
	BaseAdapter
	logger *slog.Logger
}

// StoreAdapterConfig configures a StoreAdapter.
type StoreAdapterConfig struct {
	// Client must point at the store API base URL and carry its credentials.
	Client *clients.Client
	Logger *slog.Logger
}

// NewStoreAdapter creates a store adapter. It panics without a client.
func NewStoreAdapter(cfg StoreAdapterConfig) *StoreAdapter {
	if cfg.Client == nil {
		panic("acl: store adapter requires a client")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &StoreAdapter{
		BaseAdapter: NewBaseAdapter(cfg.Client, cfg.Client.ServiceName()),
		logger:      logger.With(slog.String("component", "acl.StoreAdapter")),
	}
}

// Store DTOs. They never leave this package.
type (
	productEnvelope struct {
		Product *productDTO `json:"product"`
	}

	productDTO struct {
		ID          string       `json:"id"`
		Title       *string      `json:"title"`
		Subtitle    *string      `json:"subtitle"`
		Description *string      `json:"description"`
		Handle      *string      `json:"handle"`
		Status      string       `json:"status"`
		Type        *valueDTO    `json:"type"`
		Tags        []valueDTO   `json:"tags"`
		Variants    []variantDTO `json:"variants"`
	}

	valueDTO struct {
		ID    string `json:"id,omitempty"`
		Value string `json:"value"`
	}

	variantDTO struct {
		ID     string     `json:"id"`
		Title  string     `json:"title"`
		Prices []priceDTO `json:"prices"`
	}

	priceDTO struct {
		CurrencyCode string `json:"currency_code"`
		Amount       int64  `json:"amount"`
	}

	storeEnvelope struct {
		Store *struct {
			DefaultCurrencyCode string `json:"default_currency_code"`
		} `json:"store"`
	}

	productTypesEnvelope struct {
		ProductTypes []valueDTO `json:"product_types"`
	}
)

// FetchOne loads a gift card.
func (a *StoreAdapter) FetchOne(ctx context.Context, id string) (*domain.GiftCard, error) {
	const op = "fetch gift card"

	a.trace(ctx, op, slog.String("gift_card_id", id))

	body, err := a.Get(ctx, productPath(id), op, id)
	if err != nil {
		return nil, err
	}

	return a.decodeProduct(body, id)
}

// Update sends the sparse patch and returns the updated card.
func (a *StoreAdapter) Update(ctx context.Context, id string, patch domain.Patch) (*domain.GiftCard, error) {
	const op = "update gift card"

	payload := EncodePatch(patch)
	a.trace(ctx, op, slog.String("gift_card_id", id), slog.Any("keys", keysOf(payload)))

	body, err := a.Post(ctx, productPath(id), payload, op, id)
	if err != nil {
		return nil, err
	}

	return a.decodeProduct(body, id)
}

// Delete removes a gift card.
func (a *StoreAdapter) Delete(ctx context.Context, id string) error {
	const op = "delete gift card"

	a.trace(ctx, op, slog.String("gift_card_id", id))

	body, err := a.BaseAdapter.Delete(ctx, productPath(id), op, id)
	if err != nil {
		return err
	}

	return body.Close()
}

// FetchStore reads the store settings.
func (a *StoreAdapter) FetchStore(ctx context.Context) (*domain.StoreSettings, error) {
	const op = "fetch store"

	a.trace(ctx, op)

	body, err := a.Get(ctx, storePath, op, "")
	if err != nil {
		return nil, err
	}

	env, err := DecodeResponse[storeEnvelope](body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	if env.Store == nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), "response has no store")
	}

	return &domain.StoreSettings{DefaultCurrencyCode: env.Store.DefaultCurrencyCode}, nil
}

// ListClassifications returns the values of all product types.
func (a *StoreAdapter) ListClassifications(ctx context.Context) ([]string, error) {
	const op = "list product types"

	a.trace(ctx, op)

	body, err := a.Get(ctx, productTypesPath, op, "")
	if err != nil {
		return nil, err
	}

	env, err := DecodeResponse[productTypesEnvelope](body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	return TranslateSlice(env.ProductTypes, func(t *valueDTO) (string, error) {
		return t.Value, nil
	})
}

// Name implements ports.HealthChecker.
func (a *StoreAdapter) Name() string {
	return a.ServiceName()
}

// Check implements ports.HealthChecker by reading the store settings.
func (a *StoreAdapter) Check(ctx context.Context) error {
	resp, err := a.Client().Get(ctx, storePath)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("store API returned status %d", resp.StatusCode)
	}

	return nil
}

func (a *StoreAdapter) decodeProduct(body io.ReadCloser, id string) (*domain.GiftCard, error) {
	env, err := DecodeResponse[productEnvelope](body)
	if err != nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), err.Error())
	}

	if env.Product == nil {
		return nil, domain.NewUnavailableError(a.ServiceName(), "response has no product")
	}

	card := translateProduct(env.Product)
	if card.ID == "" {
		card.ID = id
	}

	return card, nil
}

func (a *StoreAdapter) trace(ctx context.Context, op string, attrs ...any) {
	logging.FromContextOr(ctx, a.logger).Log(ctx, logging.LevelTrace, op, attrs...)
}

// translateProduct converts the store product to a gift card.
func translateProduct(p *productDTO) *domain.GiftCard {
	card := &domain.GiftCard{
		ID:          p.ID,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		Description: p.Description,
		Handle:      p.Handle,
		Status:      domain.Status(p.Status),
	}

	if p.Type != nil {
		card.Classification = domain.Text(p.Type.Value)
	}

	for _, t := range p.Tags {
		card.Tags = append(card.Tags, t.Value)
	}

	for _, v := range p.Variants {
		d := domain.Denomination{ID: v.ID, Title: v.Title}
		for _, pr := range v.Prices {
			d.Prices = append(d.Prices, domain.Price{CurrencyCode: pr.CurrencyCode, Amount: pr.Amount})
		}

		card.Denominations = append(card.Denominations, d)
	}

	return card
}

// EncodePatch builds the store's update body. Only keys present in the patch
// are emitted; a nil field value encodes as JSON null.
func EncodePatch(p domain.Patch) map[string]any {
	body := make(map[string]any, len(p.Fields)+3)

	for _, f := range p.FieldNames() {
		body[string(f)] = p.Fields[f]
	}

	switch p.Classification {
	case domain.ClassificationCleared:
		body["type"] = nil
	case domain.ClassificationSet:
		body["type"] = valueDTO{Value: p.ClassificationValue}
	case domain.ClassificationUnchanged:
	}

	if p.HasTags() {
		tags := make([]valueDTO, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = valueDTO{Value: t}
		}

		body["tags"] = tags
	}

	if p.Status != nil {
		body["status"] = string(*p.Status)
	}

	return body
}

func productPath(id string) string {
	return productsPath + url.PathEscape(id)
}

func keysOf(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
