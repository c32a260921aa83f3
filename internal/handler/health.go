package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/forgo/clubhive/api/internal/model"
	"github.com/forgo/clubhive/api/internal/store"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports liveness of the process and its store
type HealthHandler struct {
	backend string
	store   store.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(backend string, s store.Store) *HealthHandler {
	return &HealthHandler{backend: backend, store: s}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := store.Ping(ctx, h.store); err != nil {
		slog.Warn("store health check failed",
			slog.String("backend", h.backend),
			slog.String("error", err.Error()),
		)
		WriteError(w, model.NewServiceUnavailableError("store unavailable"))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"backend": h.backend,
	})
}
