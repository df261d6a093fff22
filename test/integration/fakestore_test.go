//go:build integration

package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// fakeStore is an in-memory store admin API. Products are kept in the
// store's wire format so updates are applied the way the store applies them.
type fakeStore struct {
	srv *httptest.Server

	mu       sync.Mutex
	products map[string]map[string]any
	updates  []map[string]any
	deletes  []string
	requests []*http.Request

	// failNext makes the next n requests answer failStatus.
	failNext   int
	failStatus int
	failBody   string
}

func newFakeStore(t harnessT) *fakeStore {
	t.Helper()

	f := &fakeStore{products: make(map[string]map[string]any)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/store", f.guard(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"store": map[string]any{"default_currency_code": "usd"}})
	}))
	mux.HandleFunc("GET /admin/products/types", f.guard(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"product_types": []map[string]any{
			{"value": "seasonal"}, {"value": "corporate"},
		}})
	}))
	mux.HandleFunc("GET /admin/products/{id}", f.guard(f.get))
	mux.HandleFunc("POST /admin/products/{id}", f.guard(f.update))
	mux.HandleFunc("DELETE /admin/products/{id}", f.guard(f.delete))

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)

	return f
}

func (f *fakeStore) URL() string { return f.srv.URL }

// put stores a draft gift card.
func (f *fakeStore) put(id, title, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.products[id] = map[string]any{
		"id":          id,
		"title":       title,
		"subtitle":    nil,
		"description": "A gift card",
		"handle":      id,
		"status":      status,
		"type":        map[string]any{"value": "seasonal"},
		"tags":        []any{map[string]any{"value": "gift"}},
		"variants": []any{map[string]any{
			"id": "var_" + id, "title": "25",
			"prices": []any{map[string]any{"currency_code": "usd", "amount": 2500}},
		}},
	}
}

func (f *fakeStore) failWith(n, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failNext, f.failStatus, f.failBody = n, status, body
}

func (f *fakeStore) product(id string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.products[id]
}

func (f *fakeStore) lastUpdate() map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.updates) == 0 {
		return nil
	}

	return f.updates[len(f.updates)-1]
}

func (f *fakeStore) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.requests)
}

func (f *fakeStore) lastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.requests) == 0 {
		return nil
	}

	return f.requests[len(f.requests)-1]
}

func (f *fakeStore) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))

		if f.failNext > 0 {
			f.failNext--
			status, body := f.failStatus, f.failBody
			f.mu.Unlock()

			w.WriteHeader(status)
			_, _ = io.WriteString(w, body)

			return
		}

		f.mu.Unlock()
		next(w, r)
	}
}

func (f *fakeStore) get(w http.ResponseWriter, r *http.Request) {
	p := f.product(r.PathValue("id"))
	if p == nil {
		writeJSON(w, http.StatusNotFound, map[string]any{"type": "not_found", "message": "Product not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"product": p})
}

func (f *fakeStore) update(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"type": "invalid_data", "message": err.Error()})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"type": "not_found", "message": "Product not found"})
		return
	}

	f.updates = append(f.updates, body)

	for k, v := range body {
		p[k] = v
	}

	writeJSON(w, http.StatusOK, map[string]any{"product": p})
}

func (f *fakeStore) delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	f.mu.Lock()
	delete(f.products, id)
	f.deletes = append(f.deletes, id)
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"id": id, "object": "product", "deleted": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
