package domain

// Status is the lifecycle state of a gift card.
type Status string

// Lifecycle states. The store owns transitions between them; the editor can
// only request the publish/unpublish toggle.
const (
	StatusDraft     Status = "draft"
	StatusProposed  Status = "proposed"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

// Valid reports whether s is one of the four known states.
func (s Status) Valid() bool {
	_, ok := statusPresentation[s]
	return ok
}

// Toggle returns the status the publish/unpublish action moves to.
// Published goes back to draft; every other state is published.
func (s Status) Toggle() Status {
	if s == StatusPublished {
		return StatusDraft
	}

	return StatusPublished
}

// TogglePatch builds the status-only patch for the toggle action.
func TogglePatch(current Status) Patch {
	next := current.Toggle()
	return Patch{Status: &next}
}

// ToggleActionLabel is the label of the publish/unpublish action for a card
// currently in status s.
func ToggleActionLabel(s Status) string {
	if s == StatusPublished {
		return "Unpublish Gift Card"
	}

	return "Publish Gift Card"
}

// Variant is the visual tone used when presenting a status.
type Variant string

// Presentation variants.
const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantWarning Variant = "warning"
	VariantDanger  Variant = "danger"
)

// Presentation describes how a status is shown to the user.
type Presentation struct {
	Label   string
	Variant Variant
}

var statusPresentation = map[Status]Presentation{
	StatusPublished: {Label: "Published", Variant: VariantSuccess},
	StatusDraft:     {Label: "Draft", Variant: VariantDefault},
	StatusProposed:  {Label: "Proposed", Variant: VariantWarning},
	StatusRejected:  {Label: "Rejected", Variant: VariantDanger},
}

// Present returns the presentation for s. Unknown statuses report false and
// are not shown.
func (s Status) Present() (Presentation, bool) {
	p, ok := statusPresentation[s]
	return p, ok
}
