package routing

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the resolution engine over HTTP.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	// Products
	r.Get("/api/v1/products", h.listProducts)                              // GET /api/v1/products?search=&warehouse_id=&published=&event_id=&channel_id=
	r.Get("/api/v1/products/{id}/publications", h.publications)            // GET /api/v1/products/{id}/publications
	r.Get("/api/v1/products/{id}/listings", h.listings)                    // GET /api/v1/products/{id}/listings
	r.Get("/api/v1/products/{id}/unpublished-reason", h.unpublishedReason) // GET /api/v1/products/{id}/unpublished-reason
	r.Get("/api/v1/session-types", h.sessionType)                          // GET /api/v1/session-types?routing_id=&product_id=

	// Distribution
	r.Get("/api/v1/routings/{id}/distribution", h.channelDistribution) // GET /api/v1/routings/{id}/distribution
	r.Get("/api/v1/warehouses/{id}/usage", h.warehouseUsage)           // GET /api/v1/warehouses/{id}/usage
	r.Get("/api/v1/diagnostics", h.diagnostics)                        // GET /api/v1/diagnostics
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c := Criteria{
		SearchText:     q.Get("search"),
		WarehouseID:    q.Get("warehouse_id"),
		PublishedState: PublishedState(q.Get("published")),
		EventID:        q.Get("event_id"),
		ChannelID:      q.Get("channel_id"),
	}
	products, err := h.service.ListProducts(r.Context(), c)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) publications(w http.ResponseWriter, r *http.Request) {
	pubs, err := h.service.Publications(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, pubs)
}

func (h *Handler) listings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.service.Listings(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, listings)
}

func (h *Handler) unpublishedReason(w http.ResponseWriter, r *http.Request) {
	reason, err := h.service.UnpublishedReason(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"published": reason == nil,
		"reason":    reason,
	})
}

func (h *Handler) sessionType(w http.ResponseWriter, r *http.Request) {
	routingID := r.URL.Query().Get("routing_id")
	productID := r.URL.Query().Get("product_id")
	id, err := h.service.SessionTypeID(r.Context(), routingID, productID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]string{
		"routing_id":      routingID,
		"product_id":      productID,
		"session_type_id": id,
	})
}

func (h *Handler) channelDistribution(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ChannelDistribution(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, out)
}

func (h *Handler) warehouseUsage(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.WarehouseUsage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, u)
}

func (h *Handler) diagnostics(w http.ResponseWriter, r *http.Request) {
	v, err := h.service.Diagnostics(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, v)
}

func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrInvalid):
		code = http.StatusBadRequest
	}
	respond(w, code, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
