package app

import (
	"slices"
	"sync"

	"github.com/truongteam/medusa-admin/internal/domain"
)

// LoadTicket orders load completions. Tickets are issued in increasing order.
type LoadTicket uint64

// FormState holds the local editing state of one gift card: the edit buffer,
// the classification selector, the tag list and the last known card.
//
// It is safe for concurrent use. After Discard every method is a no-op.
type FormState struct {
	mu sync.Mutex

	buf            domain.EditBuffer
	classification *domain.Classification
	tags           []string
	card           *domain.GiftCard

	issued  LoadTicket
	applied LoadTicket

	discarded bool
}

// FormSnapshot is a deep copy of the form state.
type FormSnapshot struct {
	Fields         map[domain.Field]*string
	Classification *domain.Classification
	Tags           []string
	Card           *domain.GiftCard
	Loaded         bool
}

// NewFormState returns an empty, not yet loaded form.
func NewFormState() *FormState {
	return &FormState{}
}

// BeginLoad issues the ticket for a load that is about to start.
func (s *FormState) BeginLoad() LoadTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.issued++

	return s.issued
}

// Apply synchronizes the form with a successfully loaded card. The result is
// dropped when a newer load has already been applied or the form was
// discarded. Apply reports whether the card was applied.
func (s *FormState) Apply(ticket LoadTicket, card *domain.GiftCard) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discarded || card == nil || ticket <= s.applied {
		return false
	}

	s.applied = ticket
	s.card = card.Clone()
	s.buf = domain.NewEditBuffer(card)
	s.classification = domain.ClassificationFrom(card)
	s.tags = slices.Clone(card.Tags)

	return true
}

// Sync applies card as the newest load.
func (s *FormState) Sync(card *domain.GiftCard) bool {
	return s.Apply(s.BeginLoad(), card)
}

// Refresh records the card returned by a successful update. Only the last
// known card changes; the user's buffer is kept as is.
func (s *FormState) Refresh(card *domain.GiftCard) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discarded || card == nil || s.applied == 0 {
		return
	}

	s.card = card.Clone()
}

// SetField stores a value for f.
func (s *FormState) SetField(f domain.Field, value string) {
	s.edit(func() { s.buf.Set(f, value) })
}

// ClearField sets f to an explicit null.
func (s *FormState) ClearField(f domain.Field) {
	s.edit(func() { s.buf.Null(f) })
}

// UnsetField removes f from the buffer so it is not sent.
func (s *FormState) UnsetField(f domain.Field) {
	s.edit(func() { s.buf.Unset(f) })
}

// SetClassification selects value as the classification.
func (s *FormState) SetClassification(value string) {
	s.edit(func() { s.classification = domain.NewClassification(value) })
}

// ClearClassification removes the classification.
func (s *FormState) ClearClassification() {
	s.edit(func() { s.classification = nil })
}

// SetTags replaces the tag list.
func (s *FormState) SetTags(tags []string) {
	s.edit(func() { s.tags = slices.Clone(tags) })
}

// Patch normalizes the current state into a store patch.
func (s *FormState) Patch() domain.Patch {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Normalize(s.buf, s.classification, s.tags)
}

// Status returns the last known status and whether a card was loaded.
func (s *FormState) Status() (domain.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.card == nil {
		return "", false
	}

	return s.card.Status, true
}

// Card returns a copy of the last known card, or nil.
func (s *FormState) Card() *domain.GiftCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.card.Clone()
}

// Snapshot returns a deep copy of the whole state.
func (s *FormState) Snapshot() FormSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := FormSnapshot{
		Fields: make(map[domain.Field]*string, len(domain.Fields)),
		Tags:   slices.Clone(s.tags),
		Card:   s.card.Clone(),
		Loaded: s.applied > 0,
	}

	for _, f := range domain.Fields {
		if v, ok := s.buf.Get(f); ok {
			snap.Fields[f] = v
		}
	}

	if s.classification != nil {
		c := *s.classification
		snap.Classification = &c
	}

	return snap
}

// Discard drops all state. Later calls have no effect.
func (s *FormState) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discarded = true
	s.buf = domain.EditBuffer{}
	s.classification = nil
	s.tags = nil
	s.card = nil
}

// Discarded reports whether Discard was called.
func (s *FormState) Discarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.discarded
}

func (s *FormState) edit(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discarded {
		return
	}

	fn()
}
