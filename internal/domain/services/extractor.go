package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"threatlens/internal/domain/models"
	"threatlens/internal/nlp"
	"threatlens/pkg/logger"
)

// IndicatorExtractor pulls IOCs and named entities out of report text
// using regex patterns and a pluggable entity tagger.
type IndicatorExtractor struct {
	patterns map[string]*regexp.Regexp
	tagger   nlp.Tagger
	logger   *logger.Logger
}

// domainDenylist filters documentation placeholders from domain matches.
var domainDenylist = map[string]bool{
	"example.com":   true,
	"test.com":      true,
	"localhost.com": true,
}

// malwareContextKeywords mark a text window as malware-related. A
// capitalized token near one of these is treated as a malware family name.
var malwareContextKeywords = []string{
	"malware", "trojan", "ransomware", "backdoor", "rootkit",
	"worm", "rat", "loader", "stealer", "botnet", "apt", "virus",
}

// contextWindow is the number of bytes inspected on each side of a
// candidate malware name's start offset.
const contextWindow = 50

// NewIndicatorExtractor creates an extractor. The tagger supplies
// organization and location entities; it may be nil, in which case those
// categories stay empty.
func NewIndicatorExtractor(tagger nlp.Tagger, log *logger.Logger) *IndicatorExtractor {
	ie := &IndicatorExtractor{
		patterns: make(map[string]*regexp.Regexp),
		tagger:   tagger,
		logger:   log.WithComponent("indicator-extractor"),
	}
	ie.compilePatterns()
	return ie
}

// compilePatterns compiles the IOC regex patterns once.
func (ie *IndicatorExtractor) compilePatterns() {
	// Candidate IPv4; octet range checked in validateIP
	ie.patterns["ip"] = regexp.MustCompile(`\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`)

	ie.patterns["domain"] = regexp.MustCompile(`\b(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}\b`)

	ie.patterns["url"] = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)

	ie.patterns["cve"] = regexp.MustCompile(`(?i)\bCVE-\d{4}-\d{4,7}\b`)

	// Hex runs bucket strictly by length: a 64-char run cannot partially
	// match the 32-char pattern because hex digits are word characters.
	ie.patterns["md5"] = regexp.MustCompile(`\b[a-fA-F0-9]{32}\b`)
	ie.patterns["sha1"] = regexp.MustCompile(`\b[a-fA-F0-9]{40}\b`)
	ie.patterns["sha256"] = regexp.MustCompile(`\b[a-fA-F0-9]{64}\b`)

	ie.patterns["email"] = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
}

// Extract runs every extractor category over the text. It is a total
// function: any input produces a well-formed IndicatorSet, and the same
// input always produces the same result.
func (ie *IndicatorExtractor) Extract(text string) *models.IndicatorSet {
	set := models.NewIndicatorSet()

	set.IPs = ie.extractIPs(text)
	set.Domains = ie.extractDomains(text)
	set.URLs = dedupe(ie.patterns["url"].FindAllString(text, -1))
	set.CVEs = dedupe(ie.patterns["cve"].FindAllString(text, -1))
	set.Hashes = models.HashSet{
		MD5:    dedupe(ie.patterns["md5"].FindAllString(text, -1)),
		SHA1:   dedupe(ie.patterns["sha1"].FindAllString(text, -1)),
		SHA256: dedupe(ie.patterns["sha256"].FindAllString(text, -1)),
	}
	set.Emails = dedupe(ie.patterns["email"].FindAllString(text, -1))
	set.MalwareNames = ie.extractMalwareNames(text)
	set.Organizations, set.Locations = ie.extractTaggedEntities(text)

	set.Recount()
	return set
}

// extractIPs returns candidate IPv4 matches whose octets are all in range.
func (ie *IndicatorExtractor) extractIPs(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range ie.patterns["ip"].FindAllString(text, -1) {
		if seen[m] || !validIPv4(m) {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

func validIPv4(s string) bool {
	for _, octet := range strings.Split(s, ".") {
		n, err := strconv.Atoi(octet)
		if err != nil || n > 255 {
			return false
		}
	}
	return true
}

// extractDomains returns domain matches minus the denylist.
func (ie *IndicatorExtractor) extractDomains(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range ie.patterns["domain"].FindAllString(text, -1) {
		if domainDenylist[strings.ToLower(m)] {
			continue
		}
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	if out == nil {
		out = []string{}
	}
	return out
}

// extractMalwareNames applies the capitalized-token heuristic: a token
// longer than three characters starting with an uppercase letter counts
// as a malware name when a malware keyword appears within the
// surrounding window. Proper nouns near malware language produce known
// false positives; attribution scoring tolerates them.
func (ie *IndicatorExtractor) extractMalwareNames(text string) []string {
	out := []string{}
	if ie.tagger == nil {
		return out
	}

	tokens, err := ie.tagger.Tokenize(text)
	if err != nil {
		ie.logger.Warn().Err(err).Msg("tokenization failed, skipping malware name extraction")
		return out
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if len(tok.Text) <= 3 || !startsUpper(tok.Text) {
			continue
		}
		if seen[tok.Text] {
			continue
		}
		// Window is anchored at the token start on both sides
		windowStart := tok.Start - contextWindow
		if windowStart < 0 {
			windowStart = 0
		}
		windowEnd := tok.Start + contextWindow
		if windowEnd > len(lower) {
			windowEnd = len(lower)
		}
		window := lower[windowStart:windowEnd]

		for _, kw := range malwareContextKeywords {
			if strings.Contains(window, kw) {
				seen[tok.Text] = true
				out = append(out, tok.Text)
				break
			}
		}
	}
	return out
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// extractTaggedEntities maps tagger spans to the organization and
// location categories. Tagger errors degrade to empty categories rather
// than failing the extraction.
func (ie *IndicatorExtractor) extractTaggedEntities(text string) (orgs, locs []string) {
	orgs, locs = []string{}, []string{}
	if ie.tagger == nil {
		return orgs, locs
	}

	spans, err := ie.tagger.LabelSpans(text)
	if err != nil {
		ie.logger.Warn().Err(err).Msg("entity tagging failed, skipping organizations and locations")
		return orgs, locs
	}

	seenOrg := make(map[string]bool)
	seenLoc := make(map[string]bool)
	for _, span := range spans {
		switch span.Label {
		case nlp.LabelOrg:
			if !seenOrg[span.Text] {
				seenOrg[span.Text] = true
				orgs = append(orgs, span.Text)
			}
		case nlp.LabelGeo, nlp.LabelLocation:
			if !seenLoc[span.Text] {
				seenLoc[span.Text] = true
				locs = append(locs, span.Text)
			}
		}
	}
	return orgs, locs
}

// dedupe removes duplicates preserving first-occurrence order and never
// returns nil.
func dedupe(values []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
