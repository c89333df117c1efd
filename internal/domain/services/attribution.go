package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"threatlens/internal/domain/models"
	"threatlens/pkg/logger"
)

// ErrProfileNotFound is returned by Profile when no catalog entry
// matches the queried name or alias.
var ErrProfileNotFound = errors.New("apt profile not found")

// mitreAlignmentDepth bounds the MITRE alignment signal to the highest
// ranked technique matches, keeping many-technique reports from
// inflating every candidate's score.
const mitreAlignmentDepth = 5

// AttributionEngine scores report text against the embedded APT catalog
// using additive evidence signals. The catalog is immutable, so one
// engine serves concurrent requests without locking.
type AttributionEngine struct {
	catalog []models.ActorProfile
	logger  *logger.Logger
}

// NewAttributionEngine creates an engine over the embedded actor catalog.
func NewAttributionEngine(log *logger.Logger) *AttributionEngine {
	return &AttributionEngine{
		catalog: actorCatalog,
		logger:  log.WithComponent("attribution-engine"),
	}
}

// Attribute ranks APT groups against the report. Each signal match adds
// points and its own evidence line; repeated matches accumulate.
// Candidates with zero score are excluded. indicators is accepted for
// interface symmetry with the rest of the pipeline; current signals use
// text and technique matches only.
func (ae *AttributionEngine) Attribute(text string, indicators *models.IndicatorSet, techniques []models.TechniqueMatch) []models.AttributionCandidate {
	_ = indicators
	lower := strings.ToLower(text)
	candidates := []models.AttributionCandidate{}

	topTechniques := techniques
	if len(topTechniques) > mitreAlignmentDepth {
		topTechniques = topTechniques[:mitreAlignmentDepth]
	}

	for _, actor := range ae.catalog {
		score := 0
		evidence := []string{}

		for _, alias := range actor.Aliases {
			if strings.Contains(lower, strings.ToLower(alias)) {
				score += 50
				evidence = append(evidence, fmt.Sprintf("Direct mention: %s", alias))
			}
		}

		for _, tool := range actor.Tools {
			if strings.Contains(lower, strings.ToLower(tool)) {
				score += 15
				evidence = append(evidence, fmt.Sprintf("Known tool: %s", tool))
			}
		}

		for _, target := range actor.Targets {
			if strings.Contains(lower, strings.ToLower(target)) {
				score += 5
				evidence = append(evidence, fmt.Sprintf("Target sector: %s", target))
			}
		}

		for _, ttp := range actor.TTPs {
			if strings.Contains(lower, strings.ToLower(ttp)) {
				score += 8
				evidence = append(evidence, fmt.Sprintf("TTP match: %s", ttp))
			}
		}

		for _, tech := range topTechniques {
			techName := strings.ToLower(tech.Name)
			for _, ttp := range actor.TTPs {
				ttpLower := strings.ToLower(ttp)
				if strings.Contains(techName, ttpLower) || strings.Contains(ttpLower, techName) {
					score += 3
					evidence = append(evidence, fmt.Sprintf("MITRE technique alignment: %s", tech.TechniqueID))
				}
			}
		}

		if score == 0 {
			continue
		}

		confidence := float64(score)
		if confidence > 100 {
			confidence = 100
		}

		candidates = append(candidates, models.AttributionCandidate{
			Group:          actor.Name,
			Confidence:     confidence,
			Origin:         actor.Origin,
			Sponsor:        actor.Sponsor,
			Motivation:     actor.Motivation,
			Sophistication: actor.Sophistication,
			Evidence:       evidence,
			EvidenceCount:  len(evidence),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})
	return candidates
}

// Profile looks up a full actor profile by name or alias. The match is
// case-insensitive containment, so partial queries like "fancy" resolve.
func (ae *AttributionEngine) Profile(name string) (models.ActorProfile, error) {
	query := strings.ToUpper(name)
	for _, actor := range ae.catalog {
		if strings.Contains(strings.ToUpper(actor.Name), query) {
			return actor, nil
		}
		for _, alias := range actor.Aliases {
			if strings.Contains(strings.ToUpper(alias), query) {
				return actor, nil
			}
		}
	}
	return models.ActorProfile{}, ErrProfileNotFound
}

// Profiles returns a copy of the full actor catalog.
func (ae *AttributionEngine) Profiles() []models.ActorProfile {
	out := make([]models.ActorProfile, len(ae.catalog))
	copy(out, ae.catalog)
	return out
}

// ListGroups returns a lightweight summary of every tracked group.
func (ae *AttributionEngine) ListGroups() []models.ActorSummary {
	out := make([]models.ActorSummary, 0, len(ae.catalog))
	for _, actor := range ae.catalog {
		out = append(out, models.ActorSummary{
			Name:           actor.Name,
			Aliases:        actor.Aliases,
			Origin:         actor.Origin,
			Sophistication: actor.Sophistication,
		})
	}
	return out
}
