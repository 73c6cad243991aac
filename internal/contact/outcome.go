package contact

// Outcome classifies an extraction result by how many of the four core
// fields were recovered. It is a signal for the caller, never an error:
// user-facing wording for each variant belongs to the presentation layer.
type Outcome int

const (
	// OutcomeEmpty means no core field was recovered.
	OutcomeEmpty Outcome = iota
	// OutcomePartial means some but not all core fields were recovered.
	OutcomePartial
	// OutcomeComplete means name, company, email and phone are all present.
	OutcomeComplete
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEmpty:
		return "EMPTY"
	case OutcomePartial:
		return "PARTIAL"
	case OutcomeComplete:
		return "COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// ClassifyOutcome grades a candidate into the closed outcome set.
func ClassifyOutcome(c Candidate) Outcome {
	n := 0
	for _, v := range []string{c.Name, c.Company, c.Email, c.Phone} {
		if v != "" {
			n++
		}
	}
	switch n {
	case 0:
		return OutcomeEmpty
	case 4:
		return OutcomeComplete
	default:
		return OutcomePartial
	}
}
