package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"threatlens/internal/search"
	"threatlens/pkg/logger"
)

// SearchHandler handles catalog full-text search
type SearchHandler struct {
	index        *search.CatalogIndex
	defaultLimit int
	logger       *logger.Logger
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(index *search.CatalogIndex, defaultLimit int, log *logger.Logger) *SearchHandler {
	return &SearchHandler{
		index:        index,
		defaultLimit: defaultLimit,
		logger:       log.WithComponent("search"),
	}
}

// Search handles GET /api/v1/catalog/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "q is required"})
		return
	}

	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	hits, err := h.index.Search(query, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("query", query).Msg("catalog search failed")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "search failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"query": query,
		"hits":  hits,
		"total": len(hits),
	})
}
