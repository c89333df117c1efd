package services

import (
	"reflect"
	"strings"
	"testing"

	"threatlens/internal/nlp"
	"threatlens/pkg/logger"
)

func newTestExtractor() *IndicatorExtractor {
	return NewIndicatorExtractor(nlp.NewRuleTagger(), logger.NewDefault())
}

func TestExtractIPs(t *testing.T) {
	e := newTestExtractor()

	set := e.Extract("traffic to 192.168.1.10 and 192.168.1.10 again, plus 999.999.999.999 which is junk")

	if len(set.IPs) != 1 {
		t.Fatalf("ips = %v, want exactly one", set.IPs)
	}
	if set.IPs[0] != "192.168.1.10" {
		t.Errorf("ip = %q, want 192.168.1.10", set.IPs[0])
	}
}

func TestExtractDomainsDenylist(t *testing.T) {
	e := newTestExtractor()

	set := e.Extract("payloads hosted on evil-cdn.net and example.com")

	for _, d := range set.Domains {
		if d == "example.com" {
			t.Errorf("denylisted domain leaked into results: %v", set.Domains)
		}
	}
	found := false
	for _, d := range set.Domains {
		if d == "evil-cdn.net" {
			found = true
		}
	}
	if !found {
		t.Errorf("domains = %v, want evil-cdn.net", set.Domains)
	}
}

func TestExtractHashBuckets(t *testing.T) {
	e := newTestExtractor()

	md5 := "d41d8cd98f00b204e9800998ecf8427e"
	sha1 := "da39a3ee5e6b4b0d3255bfef95601890afd80709"
	sha256 := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	set := e.Extract("samples: " + md5 + " " + sha1 + " " + sha256)

	if len(set.Hashes.MD5) != 1 || set.Hashes.MD5[0] != md5 {
		t.Errorf("md5 bucket = %v, want [%s]", set.Hashes.MD5, md5)
	}
	if len(set.Hashes.SHA1) != 1 || set.Hashes.SHA1[0] != sha1 {
		t.Errorf("sha1 bucket = %v, want [%s]", set.Hashes.SHA1, sha1)
	}
	if len(set.Hashes.SHA256) != 1 || set.Hashes.SHA256[0] != sha256 {
		t.Errorf("sha256 bucket = %v, want [%s]", set.Hashes.SHA256, sha256)
	}
}

func TestExtractCVEs(t *testing.T) {
	e := newTestExtractor()

	set := e.Extract("exploiting CVE-2021-44228 and also cve-2023-1234")

	if len(set.CVEs) != 2 {
		t.Fatalf("cves = %v, want 2 entries", set.CVEs)
	}
	if set.CVEs[0] != "CVE-2021-44228" {
		t.Errorf("cves[0] = %q, want CVE-2021-44228", set.CVEs[0])
	}
	// Matches keep the casing from the source text
	if set.CVEs[1] != "cve-2023-1234" {
		t.Errorf("cves[1] = %q, want cve-2023-1234", set.CVEs[1])
	}
}

func TestExtractURLsAndEmails(t *testing.T) {
	e := newTestExtractor()

	set := e.Extract("C2 at https://bad.actor.net/gate.php, contact attacker@proton-mail.org")

	if len(set.URLs) != 1 {
		t.Fatalf("urls = %v, want 1", set.URLs)
	}
	if set.URLs[0] != "https://bad.actor.net/gate.php," && set.URLs[0] != "https://bad.actor.net/gate.php" {
		t.Errorf("url = %q", set.URLs[0])
	}
	if len(set.Emails) != 1 || set.Emails[0] != "attacker@proton-mail.org" {
		t.Errorf("emails = %v, want [attacker@proton-mail.org]", set.Emails)
	}
}

func TestExtractMalwareNames(t *testing.T) {
	e := newTestExtractor()

	set := e.Extract("analysts linked the Emotet trojan to recent spam waves")

	if len(set.MalwareNames) != 1 || set.MalwareNames[0] != "Emotet" {
		t.Errorf("malware names = %v, want [Emotet]", set.MalwareNames)
	}
}

func TestExtractMalwareNamesWindowBounds(t *testing.T) {
	e := newTestExtractor()

	// The context window spans 50 bytes to each side of the token's
	// start offset, not its end.
	inside := "Suspicious" + strings.Repeat(" .", 17) + "trojan" // keyword at bytes [44,50)
	set := e.Extract(inside)
	if len(set.MalwareNames) != 1 || set.MalwareNames[0] != "Suspicious" {
		t.Errorf("malware names = %v, want [Suspicious]", set.MalwareNames)
	}

	outside := "Suspicious" + strings.Repeat(" .", 21) + "trojan" // keyword starts at byte 52
	set = e.Extract(outside)
	if len(set.MalwareNames) != 0 {
		t.Errorf("malware names = %v, want none for keyword past the window", set.MalwareNames)
	}
}

func TestExtractTaggedEntities(t *testing.T) {
	e := newTestExtractor()

	set := e.Extract("Mandiant reported renewed activity against targets in Ukraine")

	foundOrg := false
	for _, o := range set.Organizations {
		if o == "Mandiant" {
			foundOrg = true
		}
	}
	if !foundOrg {
		t.Errorf("organizations = %v, want Mandiant", set.Organizations)
	}

	foundLoc := false
	for _, l := range set.Locations {
		if l == "Ukraine" {
			foundLoc = true
		}
	}
	if !foundLoc {
		t.Errorf("locations = %v, want Ukraine", set.Locations)
	}
}

func TestExtractEmptyInput(t *testing.T) {
	e := newTestExtractor()

	set := e.Extract("")

	if set.TotalCount != 0 {
		t.Errorf("total_count = %d, want 0", set.TotalCount)
	}
	if set.IPs == nil || set.Domains == nil || set.URLs == nil || set.CVEs == nil ||
		set.Hashes.MD5 == nil || set.Hashes.SHA1 == nil || set.Hashes.SHA256 == nil ||
		set.Emails == nil || set.MalwareNames == nil || set.Organizations == nil || set.Locations == nil {
		t.Error("empty extraction must keep every category non-nil")
	}
}

func TestExtractTotalCount(t *testing.T) {
	e := newTestExtractor()

	set := e.Extract("10.0.0.1 contacted bad-host.io via https://bad-host.io/x after CVE-2024-0001")

	want := len(set.IPs) + len(set.Domains) + len(set.URLs) + len(set.CVEs) +
		set.Hashes.Count() + len(set.Emails) + len(set.MalwareNames) +
		len(set.Organizations) + len(set.Locations)
	if set.TotalCount != want {
		t.Errorf("total_count = %d, want %d", set.TotalCount, want)
	}
	if set.TotalCount == 0 {
		t.Error("expected at least one indicator")
	}
}

func TestExtractDeterministic(t *testing.T) {
	e := newTestExtractor()
	text := "APT28 used 10.0.0.1 and phishing-site.ru, dropping the Zebrocy loader after CVE-2018-8174"

	first := e.Extract(text)
	second := e.Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("extraction not deterministic:\n%+v\n%+v", first, second)
	}
}
