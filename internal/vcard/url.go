package vcard

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lbeckmann/cardvault/internal/contact"
)

// Hosts that identify a person's profile rather than their employer; a QR
// code pointing here carries no company signal.
var socialDomains = map[string]struct{}{
	"linkedin.com":  {},
	"xing.com":      {},
	"facebook.com":  {},
	"twitter.com":   {},
	"instagram.com": {},
}

// ParseURL interprets a bare (non-vCard) QR payload as a web address. The
// raw URL is kept verbatim; unless the host is a known social network, its
// first letter is capitalized and used as a weak company guess.
func ParseURL(raw string) contact.Candidate {
	u := strings.TrimSpace(raw)
	c := contact.Candidate{Website: u}

	host := hostOf(u)
	host = strings.TrimPrefix(host, "www.")
	if host == "" || isSocialHost(host) {
		return c
	}
	c.Company = capitalizeFirst(host)
	return c
}

func hostOf(raw string) string {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

func isSocialHost(host string) bool {
	if _, ok := socialDomains[host]; ok {
		return true
	}
	for d := range socialDomains {
		if strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
