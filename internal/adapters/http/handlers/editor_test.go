package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/truongteam/medusa-admin/internal/adapters/http/dto"
	"github.com/truongteam/medusa-admin/internal/app"
	"github.com/truongteam/medusa-admin/internal/domain"
	"github.com/truongteam/medusa-admin/internal/mocks"
)

type editorFixture struct {
	router   *gin.Engine
	store    *mocks.MockGiftCardStore
	sessions *app.SessionRegistry
}

func newEditorFixture(t *testing.T) *editorFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := mocks.NewMockGiftCardStore(t)

	sessions := app.NewSessionRegistry(app.SessionRegistryConfig{
		Logger: logger,
		Factory: func(id string, out *app.Outbox) *app.Editor {
			return app.NewEditor(app.EditorConfig{
				GiftCardID: id,
				Store:      store,
				Notifier:   out,
				Navigator:  out,
				Decode:     func(err error) string { return "decoded: " + err.Error() },
				Logger:     logger,
			})
		},
	})

	router := gin.New()
	NewEditorHandler(sessions, logger).RegisterRoutes(router.Group("/api/v1"))

	return &editorFixture{router: router, store: store, sessions: sessions}
}

func (f *editorFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	return w
}

func (f *editorFixture) open(t *testing.T) string {
	t.Helper()

	f.store.EXPECT().FetchOne(mock.Anything, "gc_1").Return(testCard(), nil).Once()

	w := f.do(t, http.MethodPost, "/api/v1/gift-cards/gc_1/editors", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decodeView(t, w).SessionID
}

func testCard() *domain.GiftCard {
	return &domain.GiftCard{
		ID:             "gc_1",
		Title:          domain.Text("Holiday"),
		Handle:         domain.Text("holiday"),
		Classification: domain.Text("seasonal"),
		Tags:           []string{"gift"},
		Status:         domain.StatusDraft,
		Denominations: []domain.Denomination{
			{ID: "var_1", Title: "25", Prices: []domain.Price{{CurrencyCode: "usd", Amount: 2500}}},
		},
	}
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) dto.EditorView {
	t.Helper()

	var view dto.EditorView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))

	return view
}

func messages(view dto.EditorView) []string {
	out := make([]string, 0, len(view.Notifications))
	for _, n := range view.Notifications {
		out = append(out, n.Message)
	}

	return out
}

func TestEditorHandler_Open(t *testing.T) {
	f := newEditorFixture(t)
	f.store.EXPECT().FetchOne(mock.Anything, "gc_1").Return(testCard(), nil).Once()

	w := f.do(t, http.MethodPost, "/api/v1/gift-cards/gc_1/editors", "")

	require.Equal(t, http.StatusCreated, w.Code)

	view := decodeView(t, w)
	assert.Equal(t, "/api/v1/editors/"+view.SessionID, w.Header().Get("Location"))
	assert.Equal(t, "gc_1", view.GiftCardID)
	assert.True(t, view.Loaded)
	assert.False(t, view.Closed)
	assert.Equal(t, "Holiday", *view.Form.Fields["title"])
	require.NotNil(t, view.Form.Classification)
	assert.Equal(t, "seasonal", view.Form.Classification.Value)
	assert.Equal(t, []string{"gift"}, view.Form.Tags)
	require.NotNil(t, view.Status)
	assert.Equal(t, "Draft", view.Status.Label)
	assert.Equal(t, "Publish Gift Card", view.ToggleAction)
	require.Len(t, view.Denominations.Items, 1)
	assert.Equal(t, int64(2500), view.Denominations.Items[0].Prices[0].Amount)
	assert.Empty(t, view.Images)
	assert.Empty(t, view.Notifications)
}

func TestEditorHandler_OpenNotFound(t *testing.T) {
	f := newEditorFixture(t)
	f.store.EXPECT().FetchOne(mock.Anything, "missing").
		Return(nil, domain.NewNotFoundError("gift card", "missing")).Once()

	w := f.do(t, http.MethodPost, "/api/v1/gift-cards/missing/editors", "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeNotFound, resp.Error.Code)
	assert.Equal(t, 0, f.sessions.Len())
}

func TestEditorHandler_SessionLookup(t *testing.T) {
	f := newEditorFixture(t)

	tests := []struct {
		name string
		sid  string
		want int
	}{
		{"not a uuid", "abc", http.StatusBadRequest},
		{"unknown session", uuid.NewString(), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodGet, "/api/v1/editors/"+tt.sid, "")
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestEditorHandler_EditFormIsLocal(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	w := f.do(t, http.MethodPatch, "/api/v1/editors/"+sid+"/form",
		`{"fields":{"title":"New title","subtitle":null},"unset":["handle"],"clear_classification":true,"tags":["a","b"]}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	view := decodeView(t, w)
	assert.Equal(t, "New title", *view.Form.Fields["title"])
	assert.Contains(t, view.Form.Fields, "subtitle")
	assert.Nil(t, view.Form.Fields["subtitle"])
	assert.NotContains(t, view.Form.Fields, "handle")
	assert.Nil(t, view.Form.Classification)
	assert.Equal(t, []string{"a", "b"}, view.Form.Tags)
	assert.Empty(t, view.Notifications)
}

// Tag uniqueness is left to the store.
func TestEditorHandler_EditFormKeepsDuplicateTags(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	w := f.do(t, http.MethodPatch, "/api/v1/editors/"+sid+"/form", `{"tags":["gift","gift"]}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"gift", "gift"}, decodeView(t, w).Form.Tags)

	f.store.EXPECT().Update(mock.Anything, "gc_1", mock.MatchedBy(func(p domain.Patch) bool {
		return slices.Equal(p.Tags, []string{"gift", "gift"})
	})).Return(testCard(), nil).Once()

	w = f.do(t, http.MethodPost, "/api/v1/editors/"+sid+"/save", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestEditorHandler_EditFormRejected(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	tests := []struct {
		name     string
		body     string
		wantCode string
		detail   string
	}{
		{"malformed json", `{"fields":`, dto.ErrorCodeBadRequest, ""},
		{"unknown field", `{"fields":{"price":"1"}}`, dto.ErrorCodeValidation, "fields[price]"},
		{"set and clear classification", `{"classification":"x","clear_classification":true}`, dto.ErrorCodeValidation, "classification"},
		{"blank tag", `{"tags":["ok"," "]}`, dto.ErrorCodeValidation, "tags[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPatch, "/api/v1/editors/"+sid+"/form", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error.Code)

			if tt.detail != "" {
				assert.Contains(t, resp.Error.Details, tt.detail)
			}
		})
	}
}

func TestEditorHandler_Save(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	f.do(t, http.MethodPatch, "/api/v1/editors/"+sid+"/form", `{"fields":{"title":"Renamed"}}`)

	updated := testCard()
	updated.Title = domain.Text("Renamed")

	f.store.EXPECT().Update(mock.Anything, "gc_1", mock.MatchedBy(func(p domain.Patch) bool {
		v, ok := p.Fields[domain.FieldTitle]
		return ok && v != nil && *v == "Renamed" && p.Status == nil
	})).Return(updated, nil).Once()

	w := f.do(t, http.MethodPost, "/api/v1/editors/"+sid+"/save", "")

	require.Equal(t, http.StatusOK, w.Code)

	view := decodeView(t, w)
	assert.Nil(t, view.Error)
	assert.Equal(t, []string{app.MsgUpdated}, messages(view))

	// Notifications are drained by the view that reported them.
	assert.Empty(t, decodeView(t, f.do(t, http.MethodGet, "/api/v1/editors/"+sid, "")).Notifications)
}

func TestEditorHandler_SaveFailure(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	f.store.EXPECT().Update(mock.Anything, "gc_1", mock.Anything).
		Return(nil, domain.NewValidationError("handle", "already taken")).Once()

	w := f.do(t, http.MethodPost, "/api/v1/editors/"+sid+"/save", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	view := decodeView(t, w)
	require.NotNil(t, view.Error)
	assert.Equal(t, dto.ErrorCodeValidation, view.Error.Code)
	require.Len(t, view.Notifications, 1)
	assert.Equal(t, string(domain.SeverityError), view.Notifications[0].Severity)
	assert.Contains(t, view.Notifications[0].Message, "decoded: ")
	assert.False(t, view.Closed)
}

func TestEditorHandler_TogglePublish(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	published := testCard()
	published.Status = domain.StatusPublished

	f.store.EXPECT().Update(mock.Anything, "gc_1", mock.MatchedBy(func(p domain.Patch) bool {
		return p.Status != nil && *p.Status == domain.StatusPublished && len(p.Fields) == 0
	})).Return(published, nil).Once()

	w := f.do(t, http.MethodPost, "/api/v1/editors/"+sid+"/toggle-publish", "")

	require.Equal(t, http.StatusOK, w.Code)

	view := decodeView(t, w)
	assert.Equal(t, "Published", view.Status.Label)
	assert.Equal(t, "Unpublish Gift Card", view.ToggleAction)
	assert.Equal(t, []string{app.MsgUpdated}, messages(view))
}

func TestEditorHandler_Delete(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	f.store.EXPECT().Delete(mock.Anything, "gc_1").Return(nil).Once()

	w := f.do(t, http.MethodPost, "/api/v1/editors/"+sid+"/delete", "")

	require.Equal(t, http.StatusOK, w.Code)

	view := decodeView(t, w)
	assert.True(t, view.Closed)
	assert.Equal(t, app.DefaultListingPath, view.Redirect)
	assert.Equal(t, []string{app.MsgDeleted}, messages(view))
	assert.Equal(t, 0, f.sessions.Len())

	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/api/v1/editors/"+sid, "").Code)
}

func TestEditorHandler_DeleteFailureKeepsSession(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	f.store.EXPECT().Delete(mock.Anything, "gc_1").
		Return(domain.NewUnavailableError("medusa-admin", "connection refused")).Once()

	w := f.do(t, http.MethodPost, "/api/v1/editors/"+sid+"/delete", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	view := decodeView(t, w)
	assert.False(t, view.Closed)
	assert.Empty(t, view.Redirect)
	assert.Equal(t, 1, f.sessions.Len())
}

func TestEditorHandler_Reload(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	renamed := testCard()
	renamed.Title = domain.Text("From store")
	f.store.EXPECT().FetchOne(mock.Anything, "gc_1").Return(renamed, nil).Once()

	w := f.do(t, http.MethodPost, "/api/v1/editors/"+sid+"/reload", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "From store", *decodeView(t, w).Form.Fields["title"])
}

func TestEditorHandler_AddDenominations(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	w := f.do(t, http.MethodPost, "/api/v1/editors/"+sid+"/denominations", "")

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Len(t, decodeView(t, w).Denominations.Items, 1)
}

func TestEditorHandler_Close(t *testing.T) {
	f := newEditorFixture(t)
	sid := f.open(t)

	w := f.do(t, http.MethodDelete, "/api/v1/editors/"+sid, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, f.sessions.Len())
	assert.Equal(t, http.StatusBadRequest, f.do(t, http.MethodDelete, "/api/v1/editors/nope", "").Code)
}
