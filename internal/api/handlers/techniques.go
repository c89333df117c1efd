package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"threatlens/internal/domain/services"
	"threatlens/pkg/logger"
)

// TechniquesHandler handles ATT&CK technique catalog endpoints
type TechniquesHandler struct {
	mapper *services.TechniqueMapper
	logger *logger.Logger
}

// NewTechniquesHandler creates a new TechniquesHandler
func NewTechniquesHandler(mapper *services.TechniqueMapper, log *logger.Logger) *TechniquesHandler {
	return &TechniquesHandler{
		mapper: mapper,
		logger: log.WithComponent("techniques"),
	}
}

// List handles GET /api/v1/techniques
func (h *TechniquesHandler) List(w http.ResponseWriter, r *http.Request) {
	techniques := h.mapper.Techniques()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"data":  techniques,
		"total": len(techniques),
	})
}

// Get handles GET /api/v1/techniques/{id}
func (h *TechniquesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	technique, ok := h.mapper.Technique(id)
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "technique not found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(technique)
}
