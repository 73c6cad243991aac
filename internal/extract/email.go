package extract

import (
	"regexp"
	"strings"
)

var (
	// mailto links survive in OCR output when the scanner preserves a
	// tappable artifact, and are common in QR payloads.
	reMailto = regexp.MustCompile(`(?i)mailto:([^\s?<>"']+)`)
	reEmail  = regexp.MustCompile(`(?i)[a-z0-9][a-z0-9._%+\-]*@[a-z0-9][a-z0-9.\-]*\.[a-z]{2,}`)
)

// ExtractEmails returns every email-shaped token in line: first the target
// of any mailto: link, then bare addresses. Duplicates are collapsed
// case-insensitively, keeping the first-seen casing. Never errors; a line
// without addresses yields an empty slice.
func ExtractEmails(line string) []string {
	var out []string
	seen := make(map[string]struct{}, 2)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	for _, m := range reMailto.FindAllStringSubmatch(line, -1) {
		add(m[1])
	}
	for _, m := range reEmail.FindAllString(line, -1) {
		add(m)
	}
	return out
}
