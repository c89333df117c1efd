package search

import (
	"testing"

	"threatlens/internal/domain/models"
	"threatlens/pkg/logger"
)

func testCatalogs() ([]models.Technique, []models.ActorProfile) {
	techniques := []models.Technique{
		{
			ID:          "T1566",
			Name:        "Phishing",
			Tactic:      "Initial Access",
			Description: "Adversaries may send phishing messages to gain access",
			Keywords:    []string{"phishing", "spear phishing", "email"},
		},
		{
			ID:          "T1486",
			Name:        "Data Encrypted for Impact",
			Tactic:      "Impact",
			Description: "Adversaries may encrypt data to disrupt availability",
			Keywords:    []string{"ransomware", "encrypt"},
		},
	}
	actors := []models.ActorProfile{
		{
			Name:       "APT28",
			Aliases:    []string{"Fancy Bear", "Sofacy"},
			Origin:     "Russia",
			Tools:      []string{"X-Agent"},
			Targets:    []string{"government"},
			TTPs:       []string{"spear phishing"},
			Motivation: "Espionage",
		},
	}
	return techniques, actors
}

func newTestIndex(t *testing.T) *CatalogIndex {
	t.Helper()
	techniques, actors := testCatalogs()
	index, err := NewCatalogIndex(techniques, actors, logger.NewDefault())
	if err != nil {
		t.Fatalf("NewCatalogIndex: %v", err)
	}
	t.Cleanup(func() { index.Close() })
	return index
}

func TestSearchTechnique(t *testing.T) {
	index := newTestIndex(t)

	hits, err := index.Search("ransomware", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("no hits for ransomware")
	}
	if hits[0].Kind != "technique" || hits[0].EntryID != "T1486" {
		t.Errorf("top hit = %s/%s, want technique/T1486", hits[0].Kind, hits[0].EntryID)
	}
	if hits[0].Score <= 0 {
		t.Errorf("score = %v, want > 0", hits[0].Score)
	}
}

func TestSearchActor(t *testing.T) {
	index := newTestIndex(t)

	hits, err := index.Search("sofacy", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) == 0 {
		t.Fatal("no hits for sofacy")
	}
	if hits[0].Kind != "actor" || hits[0].EntryID != "APT28" {
		t.Errorf("top hit = %s/%s, want actor/APT28", hits[0].Kind, hits[0].EntryID)
	}
}

func TestSearchLimit(t *testing.T) {
	index := newTestIndex(t)

	// "phishing" appears in a technique and an actor TTP
	hits, err := index.Search("phishing", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("hits = %d, want exactly 1", len(hits))
	}
}

func TestSearchNoResults(t *testing.T) {
	index := newTestIndex(t)

	hits, err := index.Search("kubernetes", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 0 {
		t.Errorf("hits = %v, want none", hits)
	}
}
