package models

// Technique represents a MITRE ATT&CK technique in the embedded catalog.
type Technique struct {
	ID          string   `json:"technique_id"` // e.g., T1566
	Name        string   `json:"name"`         // e.g., Phishing
	Tactic      string   `json:"tactic"`       // e.g., Initial Access
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// TechniqueMatch is a catalog technique matched against report text,
// with the keywords that fired and a 0-100 confidence score.
type TechniqueMatch struct {
	TechniqueID     string   `json:"technique_id"`
	Name            string   `json:"name"`
	Tactic          string   `json:"tactic"`
	Description     string   `json:"description"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords"`
	MatchCount      int      `json:"match_count"`
}

// KillChainTactics is the canonical ordering of ATT&CK tactics used to
// reconstruct an attack chain from unordered technique matches.
var KillChainTactics = []string{
	"Initial Access",
	"Execution",
	"Persistence",
	"Privilege Escalation",
	"Defense Evasion",
	"Credential Access",
	"Discovery",
	"Lateral Movement",
	"Collection",
	"Command and Control",
	"Exfiltration",
	"Impact",
}
