package nlp

import "testing"

func TestTokenizeOffsets(t *testing.T) {
	tagger := NewRuleTagger()
	text := "APT28 targeted NATO networks."

	tokens, err := tagger.Tokenize(text)
	if err != nil {
		t.Fatalf("Tokenize returned error: %v", err)
	}

	want := []string{"APT28", "targeted", "NATO", "networks"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Text != w {
			t.Errorf("token %d: expected %q, got %q", i, w, tokens[i].Text)
		}
		if text[tokens[i].Start:tokens[i].End] != w {
			t.Errorf("token %d offsets [%d:%d] do not slice back to %q", i, tokens[i].Start, tokens[i].End, w)
		}
	}
}

func TestLabelSpansGazetteer(t *testing.T) {
	tagger := NewRuleTagger()
	text := "The campaign targeted NATO members across Eastern Europe, with activity traced to Moscow."

	spans, err := tagger.LabelSpans(text)
	if err != nil {
		t.Fatalf("LabelSpans returned error: %v", err)
	}

	got := make(map[string]Label)
	for _, s := range spans {
		got[s.Text] = s.Label
	}

	if got["NATO"] != LabelOrg {
		t.Errorf("expected NATO tagged ORG, got %q", got["NATO"])
	}
	if got["Eastern Europe"] != LabelLocation {
		t.Errorf("expected Eastern Europe tagged LOC, got %q", got["Eastern Europe"])
	}
	if got["Moscow"] != LabelGeo {
		t.Errorf("expected Moscow tagged GPE, got %q", got["Moscow"])
	}
}

func TestLabelSpansOffsets(t *testing.T) {
	tagger := NewRuleTagger()
	text := "Attacks against Ukraine continued."

	spans, err := tagger.LabelSpans(text)
	if err != nil {
		t.Fatalf("LabelSpans returned error: %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %v", len(spans), spans)
	}
	s := spans[0]
	if text[s.Start:s.End] != s.Text {
		t.Errorf("span offsets [%d:%d] slice to %q, want %q", s.Start, s.End, text[s.Start:s.End], s.Text)
	}
}

func TestLabelSpansWordBoundary(t *testing.T) {
	tagger := NewRuleTagger()

	// "Chinatown" must not match the GPE "China".
	spans, err := tagger.LabelSpans("The meeting took place in Chinatown.")
	if err != nil {
		t.Fatalf("LabelSpans returned error: %v", err)
	}
	for _, s := range spans {
		if s.Text == "China" {
			t.Errorf("matched China inside Chinatown")
		}
	}
}

func TestLabelSpansMultibyteBoundary(t *testing.T) {
	tagger := NewRuleTagger()

	// Multibyte punctuation after a phrase is still a word boundary.
	spans, err := tagger.LabelSpans("operations traced to China、 last year")
	if err != nil {
		t.Fatalf("LabelSpans returned error: %v", err)
	}
	found := false
	for _, s := range spans {
		if s.Text == "China" && s.Label == LabelGeo {
			found = true
		}
	}
	if !found {
		t.Errorf("expected China tagged GPE before multibyte punctuation, spans: %v", spans)
	}

	// A multibyte letter fused to the phrase is not a boundary.
	spans, err = tagger.LabelSpans("the éChina cluster")
	if err != nil {
		t.Fatalf("LabelSpans returned error: %v", err)
	}
	for _, s := range spans {
		if s.Text == "China" {
			t.Errorf("matched China inside a larger word: %v", spans)
		}
	}
}

func TestSuffixOrgHeuristic(t *testing.T) {
	tagger := NewRuleTagger()
	text := "Stolen data belonged to Contoso Bank customers."

	spans, err := tagger.LabelSpans(text)
	if err != nil {
		t.Fatalf("LabelSpans returned error: %v", err)
	}

	found := false
	for _, s := range spans {
		if s.Text == "Contoso Bank" && s.Label == LabelOrg {
			found = true
		}
	}
	if !found {
		t.Errorf("expected Contoso Bank tagged ORG, spans: %v", spans)
	}
}

func TestSuffixWordAloneNotTagged(t *testing.T) {
	tagger := NewRuleTagger()

	spans, err := tagger.LabelSpans("Funds were moved to a Bank overnight.")
	if err != nil {
		t.Fatalf("LabelSpans returned error: %v", err)
	}
	for _, s := range spans {
		if s.Text == "Bank" {
			t.Errorf("bare suffix word tagged as organization")
		}
	}
}
