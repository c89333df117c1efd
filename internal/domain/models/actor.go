package models

// ActorProfile describes a known APT group in the embedded catalog.
type ActorProfile struct {
	Name           string   `json:"name"`
	Aliases        []string `json:"aliases"`
	Origin         string   `json:"origin"`
	Sponsor        string   `json:"sponsor"`
	ActiveSince    int      `json:"active_since"`
	Targets        []string `json:"targets"`
	Tools          []string `json:"tools"`
	TTPs           []string `json:"ttps"`
	Motivation     string   `json:"motivation"`
	Sophistication string   `json:"sophistication"`
}

// ActorSummary is the lightweight listing projection of a profile.
type ActorSummary struct {
	Name           string   `json:"name"`
	Aliases        []string `json:"aliases"`
	Origin         string   `json:"origin"`
	Sophistication string   `json:"sophistication"`
}

// AttributionCandidate is one scored actor hypothesis with the evidence
// strings that contributed to the score. Confidence is the accumulated
// point score capped at 100, not a probability.
type AttributionCandidate struct {
	Group          string   `json:"apt_group"`
	Confidence     float64  `json:"confidence"`
	Origin         string   `json:"origin"`
	Sponsor        string   `json:"sponsor"`
	Motivation     string   `json:"motivation"`
	Sophistication string   `json:"sophistication"`
	Evidence       []string `json:"evidence"`
	EvidenceCount  int      `json:"evidence_count"`
}
