package llm

// BuildContactJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a generic map.
// We pass this to OpenAI as a structured output constraint and also use it locally to validate.
// When missingFields is non-empty, only those keys are allowed so the model cannot
// overwrite fields the heuristics already found.
func BuildContactJSONSchema(missingFields []string) map[string]any {
	props := map[string]any{
		"name":       map[string]any{"type": "string", "minLength": 1},
		"company":    map[string]any{"type": "string", "minLength": 1},
		"email":      map[string]any{"type": "string", "pattern": `^[^@\s]+@[^@\s]+\.[^@\s]+$`},
		"phone":      map[string]any{"type": "string", "pattern": `^[+0-9][0-9 ()/.\-]{6,}$`},
		"job_title":  map[string]any{"type": "string", "minLength": 1},
		"website":    map[string]any{"type": "string", "minLength": 4},
		"address":    map[string]any{"type": "string", "minLength": 1},
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
	}

	if len(missingFields) > 0 {
		allowed := map[string]any{"confidence": props["confidence"]}
		for _, k := range missingFields {
			if p, ok := props[k]; ok {
				allowed[k] = p
			}
		}
		props = allowed
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{},
	}
}
