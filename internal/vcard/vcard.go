// Package vcard decodes QR payloads into contact candidates: vCard
// 2.1/3.0/4.0 documents and, as a fallback, bare URLs.
//
// The parser is deliberately forgiving. QR-derived vCards come from many
// generators with many quirks, so a line that cannot be interpreted is
// dropped rather than failing the parse; the worst case is an all-empty
// candidate.
package vcard

import (
	"strings"

	"github.com/lbeckmann/cardvault/internal/contact"
	"github.com/lbeckmann/cardvault/internal/extract"
)

// property is one unfolded logical line split into its parts. The name is
// upper-cased for matching; unknown properties are ignored, never erroring.
type property struct {
	name   string
	params map[string]string
	value  string
}

// IsVCard reports whether a QR payload is a vCard document.
func IsVCard(payload string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(payload)), "BEGIN:VCARD")
}

// ParsePayload dispatches a raw QR payload to the vCard or URL branch.
func ParsePayload(payload string) contact.Candidate {
	if IsVCard(payload) {
		return Parse(payload)
	}
	return ParseURL(payload)
}

// Parse decodes a vCard document into a contact candidate. Malformed lines
// are skipped one by one; the function never fails.
func Parse(raw string) contact.Candidate {
	var c contact.Candidate
	var nameFromN string

	for _, line := range strings.Split(unfold(normalizeNewlines(raw)), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}
		prop, ok := splitProperty(line)
		if !ok {
			continue
		}
		switch prop.name {
		case "FN":
			if c.Name == "" {
				c.Name = strings.TrimSpace(decodeValue(prop.value))
			}
		case "N":
			if nameFromN == "" {
				nameFromN = nameFromStructured(prop.value)
			}
		case "ORG":
			if c.Company == "" {
				parts := splitUnescaped(prop.value, ';')
				c.Company = strings.TrimSpace(decodeValue(parts[0]))
			}
		case "EMAIL":
			if c.Email == "" {
				c.Email = strings.ToLower(strings.TrimSpace(decodeValue(prop.value)))
			}
		case "TEL":
			tel := extract.CleanPhone(decodeValue(prop.value))
			if tel == "" {
				break
			}
			// First number wins, but any later mobile number overwrites
			// whatever came before it.
			if c.Phone == "" || isMobileType(prop.params["TYPE"]) {
				c.Phone = tel
			}
		case "URL":
			if c.Website == "" {
				c.Website = strings.TrimSpace(decodeValue(prop.value))
			}
		case "ADR":
			if c.Address == "" {
				c.Address = addressFromStructured(prop.value)
			}
		case "TITLE":
			// Last occurrence wins.
			if t := strings.TrimSpace(decodeValue(prop.value)); t != "" {
				c.JobTitle = t
			}
		}
	}
	if c.Name == "" {
		c.Name = nameFromN
	}
	return c
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// unfold joins continuation lines: a newline immediately followed by a space
// or tab belongs to the previous logical line, and the pair is removed
// without inserting a space.
func unfold(s string) string {
	return strings.NewReplacer("\n ", "", "\n\t", "").Replace(s)
}

// splitProperty splits one logical line on the first unescaped ':' into the
// property part and the value, then peels parameters off the property part.
// A bare parameter token with no '=' is stored under TYPE.
func splitProperty(line string) (property, bool) {
	sep := indexUnescaped(line, ':')
	if sep <= 0 {
		return property{}, false
	}
	head, value := line[:sep], line[sep+1:]

	segs := strings.Split(head, ";")
	name := strings.ToUpper(strings.TrimSpace(segs[0]))
	// Apple-style grouped properties ("item1.EMAIL") match on the bare name.
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[dot+1:]
	}
	if name == "" {
		return property{}, false
	}

	params := make(map[string]string, len(segs)-1)
	for _, seg := range segs[1:] {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if k, v, found := strings.Cut(seg, "="); found {
			params[strings.ToUpper(k)] = v
		} else if prev, dup := params["TYPE"]; dup {
			params["TYPE"] = prev + "," + seg
		} else {
			params["TYPE"] = seg
		}
	}
	return property{name: name, params: params, value: value}, true
}

// indexUnescaped returns the index of the first sep not preceded by an
// unescaped backslash, or -1.
func indexUnescaped(s string, sep byte) int {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == sep:
			return i
		}
	}
	return -1
}

// splitUnescaped splits on every unescaped sep. The result always has at
// least one element.
func splitUnescaped(s string, sep byte) []string {
	var parts []string
	start := 0
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// decodeValue reverses vCard text escaping (\n, \N, \, \; \: \\) and then
// applies quoted-printable decoding when the result still carries =XX hex
// windows, which is how vCard 2.1 generators ship umlauts.
func decodeValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if escaped {
			switch ch {
			case 'n', 'N':
				b.WriteByte('\n')
			case ',', ';', ':', '\\':
				b.WriteByte(ch)
			default:
				b.WriteByte(ch)
			}
			escaped = false
			continue
		}
		if ch == '\\' {
			escaped = true
			continue
		}
		b.WriteByte(ch)
	}
	out := b.String()
	if hasQuotedPrintable(out) {
		out = decodeQuotedPrintable(out)
	}
	return out
}

func hasQuotedPrintable(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == '=' && isHex(s[i+1]) && isHex(s[i+2]) {
			return true
		}
	}
	return false
}

// decodeQuotedPrintable decodes =XX windows byte for byte. A trailing '='
// (soft line break) and malformed windows pass through unchanged.
func decodeQuotedPrintable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '=' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(hexVal(s[i+1])<<4 | hexVal(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'A' && b <= 'F' || b >= 'a' && b <= 'f'
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return b - 'a' + 10
	}
}

// nameFromStructured rebuilds "Given Family" from an N value
// (Family;Given;Additional;Prefix;Suffix), omitting empty parts.
func nameFromStructured(value string) string {
	parts := splitUnescaped(value, ';')
	var family, given string
	if len(parts) > 0 {
		family = strings.TrimSpace(decodeValue(parts[0]))
	}
	if len(parts) > 1 {
		given = strings.TrimSpace(decodeValue(parts[1]))
	}
	switch {
	case given != "" && family != "":
		return given + " " + family
	case given != "":
		return given
	default:
		return family
	}
}

// addressFromStructured rebuilds a display address from an ADR value
// (PObox;Ext;Street;City;Region;Postal;Country): street, then postal+city,
// then country, joined with ", " and skipping empty segments.
func addressFromStructured(value string) string {
	parts := splitUnescaped(value, ';')
	at := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(decodeValue(parts[i]))
		}
		return ""
	}
	street, city, postal, country := at(2), at(3), at(5), at(6)

	var segs []string
	if street != "" {
		segs = append(segs, street)
	}
	if loc := strings.TrimSpace(postal + " " + city); loc != "" {
		segs = append(segs, loc)
	}
	if country != "" {
		segs = append(segs, country)
	}
	return strings.Join(segs, ", ")
}

func isMobileType(typ string) bool {
	up := strings.ToUpper(typ)
	return strings.Contains(up, "CELL") || strings.Contains(up, "MOBILE")
}
