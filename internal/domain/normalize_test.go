package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	fullBuffer := func() EditBuffer {
		var b EditBuffer
		b.Set(FieldTitle, "Holiday Card")
		b.Null(FieldSubtitle)
		b.Set(FieldDescription, "")
		b.Set(FieldHandle, "holiday-card")
		return b
	}

	tests := []struct {
		name           string
		buf            EditBuffer
		classification *Classification
		tags           []string
		expected       Patch
	}{
		{
			name:           "all fields present with classification and tags",
			buf:            fullBuffer(),
			classification: &Classification{Value: "seasonal", Label: "Seasonal"},
			tags:           []string{"gift", "winter"},
			expected: Patch{
				Fields: map[Field]*string{
					FieldTitle:       Text("Holiday Card"),
					FieldSubtitle:    nil,
					FieldDescription: Text(""),
					FieldHandle:      Text("holiday-card"),
				},
				Classification:      ClassificationSet,
				ClassificationValue: "seasonal",
				Tags:                []string{"gift", "winter"},
			},
		},
		{
			name:     "nil classification clears and empty tags are omitted",
			buf:      EditBuffer{},
			tags:     []string{},
			expected: Patch{Classification: ClassificationCleared},
		},
		{
			name: "absent fields are left out",
			buf: func() EditBuffer {
				b := fullBuffer()
				b.Unset(FieldHandle)
				b.Unset(FieldSubtitle)
				return b
			}(),
			classification: NewClassification("digital"),
			expected: Patch{
				Fields: map[Field]*string{
					FieldTitle:       Text("Holiday Card"),
					FieldDescription: Text(""),
				},
				Classification:      ClassificationSet,
				ClassificationValue: "digital",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.buf, tt.classification, tt.tags)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_DoesNotAliasInputs(t *testing.T) {
	var b EditBuffer
	b.Set(FieldTitle, "A")
	tags := []string{"x"}

	p := Normalize(b, nil, tags)

	tags[0] = "mutated"
	b.Set(FieldTitle, "B")
	*p.Fields[FieldTitle] = "C"

	assert.Equal(t, []string{"x"}, p.Tags)
	v, _ := b.Get(FieldTitle)
	assert.Equal(t, "B", *v)
}

func TestNormalize_NeverCarriesStatus(t *testing.T) {
	card := &GiftCard{ID: "gc_1", Title: Text("T"), Status: StatusPublished}

	p := Normalize(NewEditBuffer(card), ClassificationFrom(card), card.Tags)

	assert.Nil(t, p.Status)
}
