package routing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/boxoffice-catalog/internal/modules/catalog"
)

type staticSource struct{ snap *catalog.Snapshot }

func (s staticSource) Snapshot() *catalog.Snapshot { return s.snap }

func newTestRouter() *chi.Mux {
	r := chi.NewRouter()
	NewHandler(NewService(staticSource{catalog.Seed()})).RegisterRoutes(r)
	return r
}

func get(t *testing.T, r http.Handler, path string, out interface{}) int {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if out != nil && rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
	}
	return rec.Code
}

func TestHandler_ListProducts(t *testing.T) {
	r := newTestRouter()

	var products []ProductStatus
	if code := get(t, r, "/api/v1/products?published=published&channel_id=ch-002", &products); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(products))
	}
	for _, p := range products {
		if !p.Published || len(p.Publications) == 0 {
			t.Fatalf("expected %s published with publications", p.ID)
		}
	}

	if code := get(t, r, "/api/v1/products?published=maybe", nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid state, got %d", code)
	}
}

func TestHandler_Publications(t *testing.T) {
	r := newTestRouter()

	var pubs []Publication
	if code := get(t, r, "/api/v1/products/p-001/publications", &pubs); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(pubs) != 1 || pubs[0].SessionTypeID != "50636618" {
		t.Fatalf("unexpected publications %+v", pubs)
	}

	if code := get(t, r, "/api/v1/products/p-404/publications", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestHandler_UnpublishedReason(t *testing.T) {
	r := newTestRouter()

	var body struct {
		Published bool               `json:"published"`
		Reason    *UnpublishedReason `json:"reason"`
	}
	if code := get(t, r, "/api/v1/products/p-014/unpublished-reason", &body); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body.Published || body.Reason == nil || body.Reason.Type != ReasonNoRouting {
		t.Fatalf("expected no-routing, got %+v", body)
	}
}

func TestHandler_SessionType(t *testing.T) {
	r := newTestRouter()

	var body map[string]string
	if code := get(t, r, "/api/v1/session-types?routing_id=sr-004&product_id=p-008", &body); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["session_type_id"] != "38180372" {
		t.Fatalf("expected 38180372, got %q", body["session_type_id"])
	}
	if code := get(t, r, "/api/v1/session-types?routing_id=sr-004", nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 without product_id, got %d", code)
	}
}

func TestHandler_DistributionAndDiagnostics(t *testing.T) {
	r := newTestRouter()

	var dist []ChannelAssignment
	if code := get(t, r, "/api/v1/routings/sr-002/distribution", &dist); code != http.StatusOK || len(dist) != 2 {
		t.Fatalf("expected 2 assignments, got %d (status %d)", len(dist), code)
	}
	if code := get(t, r, "/api/v1/warehouses/wh-404/usage", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	var violations []Violation
	if code := get(t, r, "/api/v1/diagnostics", &violations); code != http.StatusOK || len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d (status %d)", len(violations), code)
	}
}
