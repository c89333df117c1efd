// Package nlp provides named-entity tagging for threat report text.
// The pipeline depends only on the Tagger interface, so the rule-based
// implementation here can be swapped for a model-backed one.
package nlp

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Label classifies a tagged span.
type Label string

const (
	LabelOrg      Label = "ORG" // organization
	LabelGeo      Label = "GPE" // geopolitical entity (country, city)
	LabelLocation Label = "LOC" // non-political location (region, landmark)
)

// Span is a labeled region of the input text. Start and End are byte
// offsets into the original string, End exclusive.
type Span struct {
	Text  string `json:"text"`
	Label Label  `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Token is a single word with its byte offsets in the original string.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Tagger labels entity spans in free text.
type Tagger interface {
	// LabelSpans returns all labeled entity spans in reading order.
	LabelSpans(text string) ([]Span, error)
	// Tokenize splits text into word tokens with byte offsets.
	Tokenize(text string) ([]Token, error)
}

// RuleTagger is a gazetteer-driven Tagger. Phrase lookups are
// case-insensitive and anchored at word boundaries; longer phrases win
// over shorter overlapping ones.
type RuleTagger struct {
	orgs []string
	geos []string
	locs []string
}

// NewRuleTagger builds a tagger with the built-in gazetteers.
func NewRuleTagger() *RuleTagger {
	return &RuleTagger{
		orgs: orgGazetteer,
		geos: geoGazetteer,
		locs: locGazetteer,
	}
}

// orgGazetteer lists organizations commonly named in threat reporting:
// alliances, agencies, vendors, and intelligence services.
var orgGazetteer = []string{
	"NATO",
	"United Nations",
	"European Union",
	"Europol",
	"Interpol",
	"FBI",
	"CIA",
	"NSA",
	"CISA",
	"GCHQ",
	"Pentagon",
	"GRU",
	"SVR",
	"FSB",
	"Mandiant",
	"CrowdStrike",
	"FireEye",
	"Kaspersky",
	"Symantec",
	"Palo Alto Networks",
	"Recorded Future",
	"Microsoft",
	"Google",
	"Cisco",
	"SolarWinds",
	"World Bank",
	"Red Cross",
}

// geoGazetteer lists countries and capitals (spaCy GPE equivalents).
var geoGazetteer = []string{
	"Ukraine",
	"Russia",
	"China",
	"Iran",
	"North Korea",
	"South Korea",
	"United States",
	"United Kingdom",
	"Germany",
	"France",
	"Poland",
	"Israel",
	"India",
	"Japan",
	"Taiwan",
	"Kyiv",
	"Moscow",
	"Beijing",
	"Tehran",
	"Pyongyang",
	"Washington",
	"London",
	"Berlin",
	"Brussels",
	"Seoul",
	"Tokyo",
}

// locGazetteer lists broader regions (spaCy LOC equivalents).
var locGazetteer = []string{
	"Eastern Europe",
	"Western Europe",
	"Middle East",
	"Southeast Asia",
	"East Asia",
	"Central Asia",
	"North America",
	"South America",
	"Baltic",
	"Balkans",
	"Persian Gulf",
}

// orgSuffixes trigger the heuristic for organizations missing from the
// gazetteer: a capitalized phrase ending in one of these is tagged ORG.
var orgSuffixes = []string{
	"Corp", "Corporation", "Inc", "Ltd", "LLC", "GmbH",
	"Bank", "Ministry", "Agency", "Department", "University", "Institute",
	"Command", "Bureau",
}

// LabelSpans returns gazetteer and heuristic matches in reading order.
func (t *RuleTagger) LabelSpans(text string) ([]Span, error) {
	var spans []Span
	spans = append(spans, findPhrases(text, t.orgs, LabelOrg)...)
	spans = append(spans, findPhrases(text, t.geos, LabelGeo)...)
	spans = append(spans, findPhrases(text, t.locs, LabelLocation)...)
	spans = append(spans, t.suffixOrgs(text)...)

	// Longest span wins on overlap, earlier start breaks ties.
	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})

	var out []Span
	lastEnd := -1
	for _, s := range spans {
		if s.Start < lastEnd {
			continue
		}
		out = append(out, s)
		lastEnd = s.End
	}
	return out, nil
}

// Tokenize splits on non-word runes, keeping byte offsets.
func (t *RuleTagger) Tokenize(text string) ([]Token, error) {
	var tokens []Token
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return tokens, nil
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '\'' || r == '-'
}

// findPhrases locates every boundary-anchored occurrence of the given
// phrases, case-insensitively.
func findPhrases(text string, phrases []string, label Label) []Span {
	lower := strings.ToLower(text)
	var spans []Span
	for _, phrase := range phrases {
		needle := strings.ToLower(phrase)
		from := 0
		for {
			idx := strings.Index(lower[from:], needle)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(needle)
			if boundedAt(text, start, end) {
				spans = append(spans, Span{
					Text:  text[start:end],
					Label: label,
					Start: start,
					End:   end,
				})
			}
			from = end
		}
	}
	return spans
}

// boundedAt reports whether [start,end) sits on word boundaries.
func boundedAt(text string, start, end int) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(prev) {
			return false
		}
	}
	if end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

// suffixOrgs tags capitalized phrases ending in an organization suffix,
// e.g. "Acme Corp" or "Defense Ministry".
func (t *RuleTagger) suffixOrgs(text string) []Span {
	tokens, _ := t.Tokenize(text)
	var spans []Span
	for i, tok := range tokens {
		if !hasOrgSuffix(tok.Text) {
			continue
		}
		// Walk back over the contiguous capitalized phrase.
		start := i
		for start > 0 && isCapitalized(tokens[start-1].Text) && adjacent(text, tokens[start-1], tokens[start]) {
			start--
		}
		if start == i {
			continue // suffix word alone is not an organization
		}
		spans = append(spans, Span{
			Text:  text[tokens[start].Start:tok.End],
			Label: LabelOrg,
			Start: tokens[start].Start,
			End:   tok.End,
		})
	}
	return spans
}

func hasOrgSuffix(word string) bool {
	trimmed := strings.TrimRight(word, ".")
	for _, s := range orgSuffixes {
		if trimmed == s {
			return true
		}
	}
	return false
}

func isCapitalized(word string) bool {
	if word == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

// adjacent reports whether only spaces separate two tokens.
func adjacent(text string, a, b Token) bool {
	gap := text[a.End:b.Start]
	return strings.TrimSpace(gap) == "" && len(gap) <= 2
}
