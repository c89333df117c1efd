package services

import (
	"math"
	"sort"
	"strings"

	"threatlens/internal/domain/models"
	"threatlens/pkg/logger"
)

// TechniqueMapper scores report text against the embedded ATT&CK
// technique catalog. The catalog is built once and never mutated, so a
// single mapper is safe for concurrent use.
type TechniqueMapper struct {
	catalog []models.Technique
	logger  *logger.Logger
}

// NewTechniqueMapper creates a mapper over the embedded catalog.
func NewTechniqueMapper(log *logger.Logger) *TechniqueMapper {
	return &TechniqueMapper{
		catalog: techniqueCatalog,
		logger:  log.WithComponent("technique-mapper"),
	}
}

// Techniques returns the full catalog in iteration order.
func (tm *TechniqueMapper) Techniques() []models.Technique {
	out := make([]models.Technique, len(tm.catalog))
	copy(out, tm.catalog)
	return out
}

// Technique returns the catalog entry with the given ID, or false.
func (tm *TechniqueMapper) Technique(id string) (models.Technique, bool) {
	id = strings.ToUpper(id)
	for _, t := range tm.catalog {
		if t.ID == id {
			return t, true
		}
	}
	return models.Technique{}, false
}

// MapTechniques returns catalog entries whose keywords occur in the
// text, ranked by descending confidence. Ties keep catalog order.
func (tm *TechniqueMapper) MapTechniques(text string) []models.TechniqueMatch {
	lower := strings.ToLower(text)
	matches := []models.TechniqueMatch{}

	for _, entry := range tm.catalog {
		var matched []string
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}

		confidence := float64(len(matched))/float64(len(entry.Keywords))*100 + 20
		if confidence > 100 {
			confidence = 100
		}
		confidence = math.Round(confidence*10) / 10

		matches = append(matches, models.TechniqueMatch{
			TechniqueID:     entry.ID,
			Name:            entry.Name,
			Tactic:          entry.Tactic,
			Description:     entry.Description,
			Confidence:      confidence,
			MatchedKeywords: matched,
			MatchCount:      len(matched),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// TacticSummary counts matched techniques per tactic. Tactics without
// matches are omitted.
func (tm *TechniqueMapper) TacticSummary(matches []models.TechniqueMatch) map[string]int {
	summary := map[string]int{}
	for _, m := range matches {
		summary[m.Tactic]++
	}
	return summary
}

// AttackChain reorders matches into the canonical kill-chain tactic
// sequence. Within a tactic, matches keep their relative order from the
// ranked input. Absent tactics are skipped.
func (tm *TechniqueMapper) AttackChain(matches []models.TechniqueMatch) []models.TechniqueMatch {
	byTactic := map[string][]models.TechniqueMatch{}
	for _, m := range matches {
		byTactic[m.Tactic] = append(byTactic[m.Tactic], m)
	}

	chain := []models.TechniqueMatch{}
	for _, tactic := range models.KillChainTactics {
		chain = append(chain, byTactic[tactic]...)
	}
	return chain
}
