package domain

import "slices"

// Field names a scalar text field of the edit buffer.
type Field string

// Buffer fields.
const (
	FieldTitle       Field = "title"
	FieldSubtitle    Field = "subtitle"
	FieldDescription Field = "description"
	FieldHandle      Field = "handle"
)

// Fields lists every buffer field in display order.
var Fields = []Field{FieldTitle, FieldSubtitle, FieldDescription, FieldHandle}

// ParseField resolves a field name.
func ParseField(name string) (Field, bool) {
	f := Field(name)
	return f, slices.Contains(Fields, f)
}

// EditBuffer is the flat, local copy of the card's scalar fields.
//
// A field is either absent, explicitly null, or set to a value. Absent
// fields are never sent to the store.
type EditBuffer struct {
	values map[Field]*string
}

// NewEditBuffer seeds a buffer from a card. Every field becomes present;
// fields the card lacks are explicit nulls.
func NewEditBuffer(card *GiftCard) EditBuffer {
	b := EditBuffer{values: make(map[Field]*string, len(Fields))}
	for _, f := range Fields {
		b.values[f] = cloneText(card.Scalar(f))
	}

	return b
}

// Get returns the value of f and whether it is present.
func (b EditBuffer) Get(f Field) (*string, bool) {
	v, ok := b.values[f]
	return cloneText(v), ok
}

// Set stores a value for f.
func (b *EditBuffer) Set(f Field, value string) {
	b.put(f, &value)
}

// Null marks f as explicitly null.
func (b *EditBuffer) Null(f Field) {
	b.put(f, nil)
}

// Unset removes f so it is left out of patches.
func (b *EditBuffer) Unset(f Field) {
	delete(b.values, f)
}

// Len is the number of present fields.
func (b EditBuffer) Len() int {
	return len(b.values)
}

// Clone returns an independent copy.
func (b EditBuffer) Clone() EditBuffer {
	if b.values == nil {
		return EditBuffer{}
	}

	c := EditBuffer{values: make(map[Field]*string, len(b.values))}
	for f, v := range b.values {
		c.values[f] = cloneText(v)
	}

	return c
}

func (b *EditBuffer) put(f Field, v *string) {
	if b.values == nil {
		b.values = make(map[Field]*string, len(Fields))
	}

	b.values[f] = v
}

// Classification is the selector state for the product type.
// Label only exists for display and never reaches the store.
type Classification struct {
	Value string
	Label string
}

// NewClassification builds the selector state for a value. The vocabulary
// is open-ended, so a value is its own label.
func NewClassification(value string) *Classification {
	return &Classification{Value: value, Label: value}
}

// ClassificationFrom derives the selector state from a card.
func ClassificationFrom(card *GiftCard) *Classification {
	if card.Classification == nil {
		return nil
	}

	return NewClassification(*card.Classification)
}
