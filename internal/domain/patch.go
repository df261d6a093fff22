package domain

import (
	"maps"
	"slices"
)

// ClassificationChange tells the store what to do with the classification.
type ClassificationChange int

const (
	// ClassificationUnchanged leaves the key out of the patch.
	ClassificationUnchanged ClassificationChange = iota

	// ClassificationCleared sends an explicit clear marker.
	ClassificationCleared

	// ClassificationSet sends the chosen value.
	ClassificationSet
)

// Patch is a sparse partial update. Anything not set means "no change".
//
// The zero value is the empty patch.
type Patch struct {
	// Fields holds the scalar fields to send. A nil value is an explicit null.
	Fields map[Field]*string

	Classification      ClassificationChange
	ClassificationValue string

	// Tags replace the remote tag set. An empty list is not sent.
	Tags []string

	// Status is only set by TogglePatch.
	Status *Status
}

// HasField reports whether f is part of the patch.
func (p Patch) HasField(f Field) bool {
	_, ok := p.Fields[f]
	return ok
}

// HasTags reports whether the patch replaces the tag set.
func (p Patch) HasTags() bool {
	return len(p.Tags) > 0
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return len(p.Fields) == 0 &&
		p.Classification == ClassificationUnchanged &&
		!p.HasTags() &&
		p.Status == nil
}

// Clone returns a deep copy of the patch.
func (p Patch) Clone() Patch {
	c := p

	if p.Fields != nil {
		c.Fields = make(map[Field]*string, len(p.Fields))
		for f, v := range p.Fields {
			c.Fields[f] = cloneText(v)
		}
	}

	c.Tags = slices.Clone(p.Tags)

	if p.Status != nil {
		s := *p.Status
		c.Status = &s
	}

	return c
}

// FieldNames returns the scalar fields in the patch in buffer order.
func (p Patch) FieldNames() []Field {
	keys := slices.Collect(maps.Keys(p.Fields))
	slices.SortFunc(keys, func(a, b Field) int {
		return slices.Index(Fields, a) - slices.Index(Fields, b)
	})

	return keys
}
