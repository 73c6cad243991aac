package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"strings"
)

var (
	reEmailLoose = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	rePhoneLoose = regexp.MustCompile(`^[+0-9][0-9 ()/.\-]{6,}$`)
)

// NormalizeAndSanitizeJSON
// - Renames known synonyms (organisation -> company, title -> job_title)
// - Drops null/empty fields and everything that fails a loose format check
// - Lowercases the email
// - Removes unknown keys (strict additionalProperties = false friendliness)
func NormalizeAndSanitizeJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	renamed := func(from, to string) {
		if v, ok := m[from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[to]; !exists {
				m[to] = v
			}
			delete(m, from)
			dropped = append(dropped, from+"->"+to)
		}
	}

	// 1) rename synonyms to our schema
	renamed("organisation", "company")
	renamed("organization", "company")
	renamed("title", "job_title")
	renamed("url", "website")
	renamed("full_name", "name")

	// 2) drop null / "" and trim everything that should be a string
	stringKeys := []string{"name", "company", "email", "phone", "job_title", "website", "address"}
	for _, k := range stringKeys {
		v, ok := m[k]
		if !ok {
			continue
		}
		s, isString := v.(string)
		if !isString {
			delete(m, k)
			if v == nil {
				dropped = append(dropped, k+"(null)")
			} else {
				dropped = append(dropped, k+"(type)")
			}
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			delete(m, k)
			dropped = append(dropped, k+"(empty)")
			continue
		}
		m[k] = s
	}

	// 3) field-specific checks
	if v, ok := m["email"].(string); ok {
		s := strings.ToLower(v)
		if reEmailLoose.MatchString(s) {
			m["email"] = s
		} else {
			delete(m, "email")
			dropped = append(dropped, "email(format)")
		}
	}
	if v, ok := m["phone"].(string); ok {
		if !rePhoneLoose.MatchString(v) {
			delete(m, "phone")
			dropped = append(dropped, "phone(format)")
		}
	}

	// 4) remove unknown keys (everything not in the schema set below)
	allowed := map[string]struct{}{
		"name": {}, "company": {}, "email": {}, "phone": {},
		"job_title": {}, "website": {}, "address": {},
		"confidence": {},
	}
	for k := range maps.Clone(m) {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("llm.extract.normalize_sanitize", "dropped", dropped)
	}
	return out, dropped, nil
}

// KeepOnlyMissing removes every field the heuristics already filled, so an
// over-eager model cannot overwrite them.
func KeepOnlyMissing(doc []byte, missing []string) ([]byte, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	keep := map[string]struct{}{"confidence": {}}
	for _, k := range missing {
		keep[k] = struct{}{}
	}
	for k := range maps.Clone(m) {
		if _, ok := keep[k]; !ok {
			delete(m, k)
		}
	}
	return json.Marshal(m)
}
