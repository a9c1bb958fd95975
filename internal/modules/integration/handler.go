package integration

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	// Catalog integration
	r.Post("/api/v1/integration", h.connect)  // POST   /api/v1/integration
	r.Put("/api/v1/integration", h.rename)    // PUT    /api/v1/integration
	r.Delete("/api/v1/integration", h.remove) // DELETE /api/v1/integration

	// Warehouses
	r.Post("/api/v1/warehouses", h.createWarehouse)        // POST   /api/v1/warehouses
	r.Delete("/api/v1/warehouses/{id}", h.deleteWarehouse) // DELETE /api/v1/warehouses/{id}

	// Sales routings
	r.Post("/api/v1/routings", h.createRouting)        // POST   /api/v1/routings
	r.Put("/api/v1/routings/{id}", h.updateRouting)    // PUT    /api/v1/routings/{id}
	r.Delete("/api/v1/routings/{id}", h.deleteRouting) // DELETE /api/v1/routings/{id}
}

func (h *Handler) connect(w http.ResponseWriter, r *http.Request) {
	var req ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in, err := h.service.Connect(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, in)
}

func (h *Handler) rename(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in, err := h.service.Rename(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, in)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Disconnect(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createWarehouse(w http.ResponseWriter, r *http.Request) {
	var req CreateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	wh, err := h.service.CreateWarehouse(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, wh)
}

func (h *Handler) deleteWarehouse(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteWarehouse(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createRouting(w http.ResponseWriter, r *http.Request) {
	var req RoutingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sr, err := h.service.CreateRouting(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, sr)
}

func (h *Handler) updateRouting(w http.ResponseWriter, r *http.Request) {
	var req RoutingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sr, err := h.service.UpdateRouting(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, sr)
}

func (h *Handler) deleteRouting(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRouting(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ErrInvalid):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, ErrConflict):
		code = http.StatusConflict
	}
	respond(w, code, map[string]string{"error": err.Error()})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
