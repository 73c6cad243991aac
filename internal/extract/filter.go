package extract

import (
	"regexp"
	"strings"
)

var (
	reWebsiteMark = regexp.MustCompile(`(?i)(www\.|https?://)`)
	reBareDomain  = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9.\-]*\.(de|com|net|org|eu|io|at|ch|info|biz)(/\S*)?$`)
	// Five-digit postal code followed by a capitalized city name.
	rePostalCity = regexp.MustCompile(`(^|\s)\d{5}\s+\p{Lu}`)
)

// IsWebsite reports whether line is a web address. Such lines never compete
// for the name or company slot.
func (c *Classifier) IsWebsite(line string) bool {
	return reWebsiteMark.MatchString(line) || reBareDomain.MatchString(strings.TrimSpace(line))
}

// IsAddress reports whether line looks like a postal address: it carries a
// street-indicator token or a postal-code-plus-city pattern.
func (c *Classifier) IsAddress(line string) bool {
	lower := strings.ToLower(line)
	for _, tok := range c.vocab.StreetIndicators {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return rePostalCity.MatchString(line)
}
