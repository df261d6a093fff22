// Package domain contains the gift card entity, its edit buffer and the pure
// rules that turn local edits into sparse store patches.
package domain

import "slices"

// GiftCard is the authoritative remote gift card product.
// It has no knowledge of the store's wire format.
type GiftCard struct {
	// ID is the store identifier. It never changes and never appears in a Patch.
	ID string

	Title       *string
	Subtitle    *string
	Description *string

	// Handle is the URL slug of the product.
	Handle *string

	// Classification is the product type value. Nil means uncategorized.
	Classification *string

	// Tags are free-form labels in insertion order.
	Tags []string

	Status Status

	// Denominations are owned by the denomination view and treated as opaque here.
	Denominations []Denomination
}

// Clone returns a deep copy of the card.
func (g *GiftCard) Clone() *GiftCard {
	if g == nil {
		return nil
	}

	c := *g
	c.Title = cloneText(g.Title)
	c.Subtitle = cloneText(g.Subtitle)
	c.Description = cloneText(g.Description)
	c.Handle = cloneText(g.Handle)
	c.Classification = cloneText(g.Classification)
	c.Tags = slices.Clone(g.Tags)

	c.Denominations = make([]Denomination, len(g.Denominations))
	for i, d := range g.Denominations {
		d.Prices = slices.Clone(d.Prices)
		c.Denominations[i] = d
	}

	return &c
}

// Scalar returns the card's value for a buffer field.
func (g *GiftCard) Scalar(f Field) *string {
	switch f {
	case FieldTitle:
		return g.Title
	case FieldSubtitle:
		return g.Subtitle
	case FieldDescription:
		return g.Description
	case FieldHandle:
		return g.Handle
	default:
		return nil
	}
}

// Denomination is a purchasable face value of a gift card.
type Denomination struct {
	ID     string
	Title  string
	Prices []Price
}

// Price is an amount in the smallest unit of a currency.
type Price struct {
	CurrencyCode string
	Amount       int64
}

// StoreSettings is the part of the store configuration the editor reads.
type StoreSettings struct {
	DefaultCurrencyCode string
}

// Text returns a pointer to s. Handy for building optional fields.
func Text(s string) *string {
	return &s
}

func cloneText(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
