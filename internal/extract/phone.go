package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// minPhoneDigits is the floor below which a digit run is noise (postal
// codes, house numbers) rather than a phone number.
const minPhoneDigits = 8

var (
	// General detector, stands in for a platform number detector: an
	// optional +, then digits interleaved with common separators.
	rePhoneAny = regexp.MustCompile(`\+?\(?\d[\d\s\-()/.]{5,}\d`)
	// Fallbacks, tried in order when the detector comes up empty.
	rePhoneIntl     = regexp.MustCompile(`\+\d{1,3}[\d\s\-()/]{5,}\d`)
	rePhoneDomestic = regexp.MustCompile(`\b0\d{1,4}[\s\-/]?\d[\d\s\-/]{3,}\d`)
	rePhoneArea     = regexp.MustCompile(`\(\d{2,6}\)[\s\-]?\d[\d\s\-]{3,}\d`)
	rePhoneLabeled  = regexp.MustCompile(`(?i)^(?:tel(?:efon)?|phone|fon|mobil(?:e)?|handy|fax|m\.|t\.)\s*[.:]*\s*(.+)$`)
)

// ExtractPhones returns phone-shaped candidates found in line, in match
// order. Detectors are tried in order and the first one that produces a
// valid candidate wins; a candidate must contain at least eight digits.
// Label prefixes ("Tel:", "Mobil:" …) are stripped before returning.
func ExtractPhones(line string) []string {
	for _, re := range []*regexp.Regexp{rePhoneAny, rePhoneIntl, rePhoneDomestic, rePhoneArea} {
		if out := collectPhones(re.FindAllString(line, -1)); len(out) > 0 {
			return out
		}
	}
	if m := rePhoneLabeled.FindStringSubmatch(line); m != nil {
		if out := collectPhones([]string{m[1]}); len(out) > 0 {
			return out
		}
	}
	return nil
}

func collectPhones(matches []string) []string {
	var out []string
	seen := make(map[string]struct{}, 2)
	for _, m := range matches {
		m = strings.Trim(m, " \t.,;:-")
		if countDigits(m) < minPhoneDigits {
			continue
		}
		key := digitsOnly(m)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

// SelectPhone applies the cross-line selection policy: the first candidate
// whose digit-only form starts with a mobile prefix wins over all others;
// otherwise the first candidate in input order is returned.
func SelectPhone(candidates []string, mobilePrefixes []string) string {
	if len(candidates) == 0 {
		return ""
	}
	for _, c := range candidates {
		digits := digitsOnly(c)
		for _, p := range mobilePrefixes {
			if strings.HasPrefix(digits, p) {
				return c
			}
		}
	}
	return candidates[0]
}

// CleanPhone keeps only digits, '+', '-', parentheses and spaces, trimmed.
// No further canonicalization is attempted.
func CleanPhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsDigit(r), r == '+', r == '-', r == '(', r == ')', r == ' ':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
