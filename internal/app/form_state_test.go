package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truongteam/medusa-admin/internal/domain"
)

func sampleCard() *domain.GiftCard {
	return &domain.GiftCard{
		ID:             "gc_1",
		Title:          domain.Text("Holiday"),
		Subtitle:       domain.Text("Give joy"),
		Description:    domain.Text("A card"),
		Handle:         domain.Text("holiday"),
		Classification: domain.Text("seasonal"),
		Tags:           []string{"gift"},
		Status:         domain.StatusDraft,
	}
}

func TestFormState_SyncPopulatesEverything(t *testing.T) {
	s := NewFormState()
	require.True(t, s.Sync(sampleCard()))

	snap := s.Snapshot()
	assert.True(t, snap.Loaded)
	assert.Equal(t, "Holiday", *snap.Fields[domain.FieldTitle])
	assert.Equal(t, "holiday", *snap.Fields[domain.FieldHandle])
	require.NotNil(t, snap.Classification)
	assert.Equal(t, "seasonal", snap.Classification.Value)
	assert.Equal(t, []string{"gift"}, snap.Tags)
}

func TestFormState_SyncIsIdempotent(t *testing.T) {
	s := NewFormState()
	s.Sync(sampleCard())
	first := s.Snapshot()

	s.Sync(sampleCard())
	assert.Equal(t, first, s.Snapshot())
}

func TestFormState_LastLoadWinsInFull(t *testing.T) {
	s := NewFormState()
	s.Sync(sampleCard())

	s.SetField(domain.FieldTitle, "edited")

	next := &domain.GiftCard{ID: "gc_1", Title: domain.Text("Renamed"), Status: domain.StatusPublished}
	s.Sync(next)

	snap := s.Snapshot()
	assert.Equal(t, "Renamed", *snap.Fields[domain.FieldTitle])

	subtitle, ok := snap.Fields[domain.FieldSubtitle]
	require.True(t, ok)
	assert.Nil(t, subtitle, "fields missing from the newer card revert to null")
	assert.Nil(t, snap.Classification)
	assert.Empty(t, snap.Tags)
}

func TestFormState_StaleLoadIsDropped(t *testing.T) {
	s := NewFormState()

	early := s.BeginLoad()
	late := s.BeginLoad()

	require.True(t, s.Apply(late, &domain.GiftCard{ID: "gc_1", Title: domain.Text("late")}))
	assert.False(t, s.Apply(early, &domain.GiftCard{ID: "gc_1", Title: domain.Text("early")}))

	snap := s.Snapshot()
	assert.Equal(t, "late", *snap.Fields[domain.FieldTitle])
}

func TestFormState_RefreshKeepsBuffer(t *testing.T) {
	s := NewFormState()
	s.Sync(sampleCard())
	s.SetField(domain.FieldTitle, "local edit")

	updated := sampleCard()
	updated.Title = domain.Text("server title")
	updated.Status = domain.StatusPublished
	s.Refresh(updated)

	status, ok := s.Status()
	require.True(t, ok)
	assert.Equal(t, domain.StatusPublished, status)
	assert.Equal(t, "local edit", *s.Snapshot().Fields[domain.FieldTitle])
}

func TestFormState_RefreshBeforeLoadIsIgnored(t *testing.T) {
	s := NewFormState()
	s.Refresh(sampleCard())

	_, ok := s.Status()
	assert.False(t, ok)
}

func TestFormState_EditsFeedThePatch(t *testing.T) {
	s := NewFormState()
	s.Sync(sampleCard())

	s.ClearField(domain.FieldSubtitle)
	s.ClearClassification()
	s.SetTags(nil)

	p := s.Patch()
	assert.True(t, p.HasField(domain.FieldSubtitle))
	assert.Nil(t, p.Fields[domain.FieldSubtitle])
	assert.Equal(t, domain.ClassificationCleared, p.Classification)
	assert.False(t, p.HasTags())
	assert.Nil(t, p.Status)

	s.SetClassification("digital")
	p = s.Patch()
	assert.Equal(t, domain.ClassificationSet, p.Classification)
	assert.Equal(t, "digital", p.ClassificationValue)
}

func TestFormState_PatchIsStableWithoutEdits(t *testing.T) {
	s := NewFormState()
	s.Sync(sampleCard())

	assert.Equal(t, s.Patch(), s.Patch())
}

func TestFormState_DiscardMakesEverythingNoOp(t *testing.T) {
	s := NewFormState()
	s.Sync(sampleCard())
	s.Discard()

	s.SetField(domain.FieldTitle, "x")
	s.SetTags([]string{"a"})
	assert.False(t, s.Sync(sampleCard()))

	snap := s.Snapshot()
	assert.Empty(t, snap.Fields)
	assert.Empty(t, snap.Tags)
	assert.Nil(t, snap.Card)
	assert.True(t, s.Discarded())
}

func TestFormState_ConcurrentAccess(t *testing.T) {
	s := NewFormState()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			s.Sync(sampleCard())
		}()

		go func() {
			defer wg.Done()
			s.SetField(domain.FieldTitle, "concurrent")
			_ = s.Patch()
		}()
	}

	wg.Wait()
	assert.True(t, s.Snapshot().Loaded)
}
