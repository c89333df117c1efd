package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"threatlens/internal/domain/services"
	"threatlens/pkg/logger"
)

// ActorsHandler handles APT group catalog endpoints
type ActorsHandler struct {
	attribution *services.AttributionEngine
	logger      *logger.Logger
}

// NewActorsHandler creates a new ActorsHandler
func NewActorsHandler(attribution *services.AttributionEngine, log *logger.Logger) *ActorsHandler {
	return &ActorsHandler{
		attribution: attribution,
		logger:      log.WithComponent("actors"),
	}
}

// List handles GET /api/v1/actors
func (h *ActorsHandler) List(w http.ResponseWriter, r *http.Request) {
	groups := h.attribution.ListGroups()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"data":  groups,
		"total": len(groups),
	})
}

// Get handles GET /api/v1/actors/{name}
func (h *ActorsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	profile, err := h.attribution.Profile(name)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "threat actor not found"})
			return
		}
		h.logger.Error().Err(err).Str("name", name).Msg("profile lookup failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "profile lookup failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}
