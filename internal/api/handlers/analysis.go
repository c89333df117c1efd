package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"threatlens/internal/domain/services"
	"threatlens/pkg/logger"
)

// AnalysisHandler handles report analysis endpoints
type AnalysisHandler struct {
	analyzer      *services.Analyzer
	extractor     *services.IndicatorExtractor
	mapper        *services.TechniqueMapper
	attribution   *services.AttributionEngine
	maxTextLength int
	logger        *logger.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler
func NewAnalysisHandler(analyzer *services.Analyzer, extractor *services.IndicatorExtractor, mapper *services.TechniqueMapper, attribution *services.AttributionEngine, maxTextLength int, log *logger.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:      analyzer,
		extractor:     extractor,
		mapper:        mapper,
		attribution:   attribution,
		maxTextLength: maxTextLength,
		logger:        log.WithComponent("analysis-handler"),
	}
}

// Analyze runs the full pipeline on a threat report
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	report, err := h.analyzer.Analyze(r.Context(), text)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "analysis failed", err)
		return
	}

	h.respondJSON(w, http.StatusOK, report)
}

// ExtractIndicators extracts IOCs from text
func (h *AnalysisHandler) ExtractIndicators(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	indicators := h.extractor.Extract(text)

	h.respondJSON(w, http.StatusOK, indicators)
}

// MapTechniques maps text onto the ATT&CK technique catalog
func (h *AnalysisHandler) MapTechniques(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	matches := h.mapper.MapTechniques(text)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"techniques":     matches,
		"tactic_summary": h.mapper.TacticSummary(matches),
		"attack_chain":   h.mapper.AttackChain(matches),
	})
}

// Attribute scores the text against known APT groups
func (h *AnalysisHandler) Attribute(w http.ResponseWriter, r *http.Request) {
	text, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	indicators := h.extractor.Extract(text)
	techniques := h.mapper.MapTechniques(text)
	candidates := h.attribution.Attribute(text, indicators, techniques)

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// decodeText reads and validates the common {"text": ...} request body.
func (h *AnalysisHandler) decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req struct {
		Text string `json:"text"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body", err)
		return "", false
	}

	if req.Text == "" {
		h.respondError(w, http.StatusBadRequest, "text is required", nil)
		return "", false
	}

	if h.maxTextLength > 0 && len(req.Text) > h.maxTextLength {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("text exceeds maximum length of %d bytes", h.maxTextLength), nil)
		return "", false
	}

	return req.Text, true
}

// respondJSON sends a JSON response
func (h *AnalysisHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// respondError sends an error response
func (h *AnalysisHandler) respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		h.logger.Error().Err(err).Msg(message)
	}

	h.respondJSON(w, status, map[string]interface{}{
		"error": message,
		"details": func() string {
			if err != nil {
				return err.Error()
			}
			return ""
		}(),
	})
}
