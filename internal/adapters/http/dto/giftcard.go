package dto

import (
	"time"

	"github.com/truongteam/medusa-admin/internal/app"
	"github.com/truongteam/medusa-admin/internal/domain"
)

// FormEditRequest changes the local form of an editor session. Nothing is
// sent to the store until the form is saved.
//
// Fields maps a field name to its new value; a JSON null makes the field an
// explicit null. Unset removes fields from the buffer so they are not sent.
// A nil Tags leaves the tags alone; an empty list empties them locally.
type FormEditRequest struct {
	Fields              map[string]*string `json:"fields"               validate:"omitempty,dive,keys,formfield,endkeys,omitempty,max=4096"`
	Unset               []string           `json:"unset"                validate:"omitempty,dive,formfield"`
	Classification      *string            `json:"classification"       validate:"omitempty,notempty,max=255"`
	ClearClassification bool               `json:"clear_classification"`
	Tags                []string           `json:"tags"                 validate:"omitempty,max=100,dive,notempty,max=255"`
}

// Validate implements Validatable.
func (r *FormEditRequest) Validate() error {
	if r.Classification != nil && r.ClearClassification {
		return &FieldError{Field: "classification", Message: "cannot be set and cleared at once"}
	}

	for _, name := range r.Unset {
		if _, ok := r.Fields[name]; ok {
			return &FieldError{Field: "unset", Message: name + " is also in fields"}
		}
	}

	return nil
}

// Apply writes the request into the form.
func (r *FormEditRequest) Apply(form *app.FormState) {
	for _, f := range domain.Fields {
		v, ok := r.Fields[string(f)]
		switch {
		case !ok:
		case v == nil:
			form.ClearField(f)
		default:
			form.SetField(f, *v)
		}
	}

	for _, name := range r.Unset {
		if f, ok := domain.ParseField(name); ok {
			form.UnsetField(f)
		}
	}

	switch {
	case r.ClearClassification:
		form.ClearClassification()
	case r.Classification != nil:
		form.SetClassification(*r.Classification)
	}

	if r.Tags != nil {
		form.SetTags(r.Tags)
	}
}

// EditorView is the state of an editor session as shown to its user.
type EditorView struct {
	SessionID  string `json:"session_id"`
	GiftCardID string `json:"gift_card_id"`
	Loaded     bool   `json:"loaded"`
	Closed     bool   `json:"closed"`

	Form FormView `json:"form"`

	// Status and ToggleAction are omitted until the card is loaded, and
	// Status also for statuses without a presentation.
	Status       *StatusView `json:"status,omitempty"`
	ToggleAction string      `json:"toggle_action,omitempty"`

	ClassificationOptions []OptionView      `json:"classification_options"`
	Denominations         DenominationsView `json:"denominations"`
	Images                []ImageView       `json:"images"`

	Notifications []NotificationView `json:"notifications"`
	Redirect      string             `json:"redirect,omitempty"`

	Error *ErrorDetail `json:"error,omitempty"`
}

// FormView is the edit buffer and the derived selector state.
type FormView struct {
	Fields         map[string]*string `json:"fields"`
	Classification *OptionView        `json:"classification"`
	Tags           []string           `json:"tags"`
}

// OptionView is a selectable value.
type OptionView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StatusView presents a lifecycle status.
type StatusView struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Variant string `json:"variant"`
}

// DenominationsView is the data of the denomination section.
type DenominationsView struct {
	DefaultCurrency string             `json:"default_currency"`
	Items           []DenominationView `json:"items"`
}

// DenominationView is one face value.
type DenominationView struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Prices []PriceView `json:"prices"`
}

// PriceView is an amount in the smallest currency unit.
type PriceView struct {
	CurrencyCode string `json:"currency_code"`
	Amount       int64  `json:"amount"`
}

// ImageView is an entry of the images section.
type ImageView struct {
	URL string `json:"url"`
}

// NotificationView is a drained notification.
type NotificationView struct {
	Message  string    `json:"message"`
	Severity string    `json:"severity"`
	At       time.Time `json:"at"`
}

// NewEditorView renders a session. It drains the session's pending
// notifications.
func NewEditorView(s *app.Session) *EditorView {
	e := s.Editor
	snap := e.Form().Snapshot()

	view := &EditorView{
		SessionID:             s.ID,
		GiftCardID:            e.ID(),
		Loaded:                snap.Loaded,
		Closed:                e.Closed(),
		Form:                  newFormView(snap),
		ClassificationOptions: []OptionView{},
		Images:                []ImageView{},
		Notifications:         []NotificationView{},
		Redirect:              s.Outbox.Location(),
	}

	if snap.Card != nil {
		if p, ok := snap.Card.Status.Present(); ok {
			view.Status = &StatusView{
				Value:   string(snap.Card.Status),
				Label:   p.Label,
				Variant: string(p.Variant),
			}
		}

		view.ToggleAction = domain.ToggleActionLabel(snap.Card.Status)
	}

	for _, v := range e.ClassificationOptions() {
		opt := domain.NewClassification(v)
		view.ClassificationOptions = append(view.ClassificationOptions, OptionView{Value: opt.Value, Label: opt.Label})
	}

	view.Denominations = newDenominationsView(e.Denominations())

	for _, n := range s.Outbox.Drain() {
		view.Notifications = append(view.Notifications, NotificationView{
			Message:  n.Message,
			Severity: string(n.Severity),
			At:       n.At,
		})
	}

	return view
}

func newFormView(snap app.FormSnapshot) FormView {
	fv := FormView{
		Fields: make(map[string]*string, len(snap.Fields)),
		Tags:   snap.Tags,
	}

	for f, v := range snap.Fields {
		fv.Fields[string(f)] = v
	}

	if fv.Tags == nil {
		fv.Tags = []string{}
	}

	if snap.Classification != nil {
		fv.Classification = &OptionView{Value: snap.Classification.Value, Label: snap.Classification.Label}
	}

	return fv
}

func newDenominationsView(d app.DenominationView) DenominationsView {
	view := DenominationsView{
		DefaultCurrency: d.DefaultCurrency,
		Items:           make([]DenominationView, 0, len(d.Denominations)),
	}

	for _, den := range d.Denominations {
		item := DenominationView{ID: den.ID, Title: den.Title, Prices: make([]PriceView, 0, len(den.Prices))}
		for _, p := range den.Prices {
			item.Prices = append(item.Prices, PriceView{CurrencyCode: p.CurrencyCode, Amount: p.Amount})
		}

		view.Items = append(view.Items, item)
	}

	return view
}
