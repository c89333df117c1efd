package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisReport is the full result of running a report through the
// pipeline: extraction, technique mapping, and attribution.
type AnalysisReport struct {
	ID             uuid.UUID              `json:"id"`
	TextLength     int                    `json:"text_length"`
	Indicators     *IndicatorSet          `json:"indicators"`
	Techniques     []TechniqueMatch       `json:"techniques"`
	TacticSummary  map[string]int         `json:"tactic_summary"`
	AttackChain    []TechniqueMatch       `json:"attack_chain"`
	Attribution    []AttributionCandidate `json:"attribution"`
	ProcessingTime time.Duration          `json:"processing_time"`
	AnalyzedAt     time.Time              `json:"analyzed_at"`
}

// PrimaryAttribution returns the top-ranked candidate, or nil when no
// actor scored above zero.
func (r *AnalysisReport) PrimaryAttribution() *AttributionCandidate {
	if len(r.Attribution) == 0 {
		return nil
	}
	return &r.Attribution[0]
}
