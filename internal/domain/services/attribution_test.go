package services

import (
	"errors"
	"testing"

	"threatlens/internal/domain/models"
	"threatlens/pkg/logger"
)

func newTestAttribution() *AttributionEngine {
	return NewAttributionEngine(logger.NewDefault())
}

func TestAttributeDirectMention(t *testing.T) {
	ae := newTestAttribution()

	text := "Fancy Bear deployed X-Agent against NATO networks in Ukraine"
	candidates := ae.Attribute(text, models.NewIndicatorSet(), nil)

	if len(candidates) != 1 {
		t.Fatalf("candidates = %d, want 1", len(candidates))
	}
	got := candidates[0]
	if got.Group != "APT28" {
		t.Fatalf("group = %s, want APT28", got.Group)
	}
	// alias 50 + tool 15 + two target sectors at 5 each
	if got.Confidence != 75 {
		t.Errorf("confidence = %v, want 75", got.Confidence)
	}
	if got.EvidenceCount != 4 {
		t.Errorf("evidence count = %d, want 4: %v", got.EvidenceCount, got.Evidence)
	}

	wantLines := map[string]bool{
		"Direct mention: Fancy Bear": false,
		"Known tool: X-Agent":        false,
		"Target sector: nato":        false,
		"Target sector: ukraine":     false,
	}
	for _, line := range got.Evidence {
		if _, ok := wantLines[line]; ok {
			wantLines[line] = true
		}
	}
	for line, seen := range wantLines {
		if !seen {
			t.Errorf("missing evidence line %q in %v", line, got.Evidence)
		}
	}
}

func TestAttributeConfidenceCap(t *testing.T) {
	ae := newTestAttribution()

	// Three alias hits alone exceed 100
	candidates := ae.Attribute("APT28, also tracked as Fancy Bear and Sofacy", models.NewIndicatorSet(), nil)

	if len(candidates) == 0 {
		t.Fatal("no candidates")
	}
	if candidates[0].Group != "APT28" {
		t.Fatalf("group = %s, want APT28", candidates[0].Group)
	}
	if candidates[0].Confidence != 100 {
		t.Errorf("confidence = %v, want capped 100", candidates[0].Confidence)
	}
}

func TestAttributeMITREAlignment(t *testing.T) {
	ae := newTestAttribution()

	techniques := []models.TechniqueMatch{
		{TechniqueID: "T1566", Name: "Phishing", Tactic: "Initial Access"},
	}
	candidates := ae.Attribute("spear phishing campaign observed", models.NewIndicatorSet(), techniques)

	// APT28, APT33 and APT10 all carry a spear phishing TTP; the TTP text
	// match adds 8 and the technique-name alignment adds 3.
	if len(candidates) != 3 {
		t.Fatalf("candidates = %d, want 3", len(candidates))
	}
	for _, c := range candidates {
		if c.Confidence != 11 {
			t.Errorf("%s confidence = %v, want 11", c.Group, c.Confidence)
		}
	}
	// Equal scores keep catalog order
	if candidates[0].Group != "APT28" || candidates[1].Group != "APT33" || candidates[2].Group != "APT10" {
		t.Errorf("order = [%s %s %s], want [APT28 APT33 APT10]",
			candidates[0].Group, candidates[1].Group, candidates[2].Group)
	}

	foundAlignment := false
	for _, line := range candidates[0].Evidence {
		if line == "MITRE technique alignment: T1566" {
			foundAlignment = true
		}
	}
	if !foundAlignment {
		t.Errorf("missing alignment evidence in %v", candidates[0].Evidence)
	}
}

func TestAttributeZeroScoreExcluded(t *testing.T) {
	ae := newTestAttribution()

	candidates := ae.Attribute("routine maintenance window announcement", models.NewIndicatorSet(), nil)

	if candidates == nil {
		t.Fatal("candidates must be non-nil")
	}
	if len(candidates) != 0 {
		t.Errorf("candidates = %v, want none", candidates)
	}
}

func TestProfileLookup(t *testing.T) {
	ae := newTestAttribution()

	profile, err := ae.Profile("fancy")
	if err != nil {
		t.Fatalf("Profile(fancy): %v", err)
	}
	if profile.Name != "APT28" {
		t.Errorf("name = %s, want APT28", profile.Name)
	}

	profile, err = ae.Profile("LAZARUS")
	if err != nil {
		t.Fatalf("Profile(LAZARUS): %v", err)
	}
	if profile.Name != "Lazarus Group" {
		t.Errorf("name = %s, want Lazarus Group", profile.Name)
	}

	if _, err := ae.Profile("no-such-group"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("err = %v, want ErrProfileNotFound", err)
	}
}

func TestListGroups(t *testing.T) {
	ae := newTestAttribution()

	groups := ae.ListGroups()

	if len(groups) != 8 {
		t.Fatalf("groups = %d, want 8", len(groups))
	}
	if groups[0].Name != "APT28" {
		t.Errorf("first group = %s, want APT28", groups[0].Name)
	}
	for _, g := range groups {
		if g.Origin == "" || g.Sophistication == "" {
			t.Errorf("incomplete summary: %+v", g)
		}
	}
}
