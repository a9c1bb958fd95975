package productsync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/georgemunganga/boxoffice-catalog/internal/config"
)

// Handler exposes the two sync phases over HTTP. With ?auto_complete=true the
// handler completes the sync itself after the configured delay.
type Handler struct {
	service Service
	delay   time.Duration
	logger  *logrus.Logger
}

func NewHandler(service Service, delay time.Duration, logger *logrus.Logger) *Handler {
	return &Handler{service: service, delay: delay, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/api/v1/sync", h.begin)                  // POST /api/v1/sync?auto_complete=true
	r.Post("/api/v1/sync/{id}/complete", h.complete) // POST /api/v1/sync/{id}/complete
	r.Get("/api/v1/sync/pending", h.pending)         // GET  /api/v1/sync/pending
}

func (h *Handler) begin(w http.ResponseWriter, r *http.Request) {
	handle, err := h.service.BeginSync(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if r.URL.Query().Get("auto_complete") == "true" {
		id := handle.ID
		time.AfterFunc(h.delay, func() {
			if _, err := h.service.CompleteSync(context.Background(), id); err != nil {
				config.LogError(h.logger, "productsync", "autoComplete", map[string]string{"handle": id}, err)
			}
		})
	}
	respond(w, http.StatusAccepted, handle)
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.CompleteSync(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		code := http.StatusInternalServerError
		switch {
		case errors.Is(err, ErrUnknownHandle):
			code = http.StatusNotFound
		case errors.Is(err, ErrAlreadyCompleted):
			code = http.StatusConflict
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, res)
}

func (h *Handler) pending(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.PendingProducts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, products)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
