package models

// HashSet groups file hashes extracted from a report by digest type.
type HashSet struct {
	MD5    []string `json:"md5"`
	SHA1   []string `json:"sha1"`
	SHA256 []string `json:"sha256"`
}

// Count returns the number of hashes across all buckets.
func (h HashSet) Count() int {
	return len(h.MD5) + len(h.SHA1) + len(h.SHA256)
}

// IndicatorSet holds every indicator category extracted from a single
// report. Slices are always non-nil and deduplicated in first-occurrence
// order, so the same text always serializes to the same JSON.
type IndicatorSet struct {
	IPs           []string `json:"ips"`
	Domains       []string `json:"domains"`
	URLs          []string `json:"urls"`
	CVEs          []string `json:"cves"`
	Hashes        HashSet  `json:"hashes"`
	Emails        []string `json:"emails"`
	MalwareNames  []string `json:"malware_names"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
	TotalCount    int      `json:"total_count"`
}

// NewIndicatorSet returns an empty set with all slices initialized.
func NewIndicatorSet() *IndicatorSet {
	return &IndicatorSet{
		IPs:           []string{},
		Domains:       []string{},
		URLs:          []string{},
		CVEs:          []string{},
		Hashes:        HashSet{MD5: []string{}, SHA1: []string{}, SHA256: []string{}},
		Emails:        []string{},
		MalwareNames:  []string{},
		Organizations: []string{},
		Locations:     []string{},
	}
}

// Recount recomputes TotalCount from the category sizes.
func (s *IndicatorSet) Recount() {
	s.TotalCount = len(s.IPs) + len(s.Domains) + len(s.URLs) + len(s.CVEs) +
		s.Hashes.Count() + len(s.Emails) + len(s.MalwareNames) +
		len(s.Organizations) + len(s.Locations)
}
