package extract

// Vocabulary holds the signal tables the classifier and selectors score
// with. The tables are treated as immutable after construction; tests may
// substitute smaller ones. The defaults are calibrated against German and
// English business cards, which is also why the mobile prefix table carries
// the German conventions ("49 1…" international, "01" domestic). Other
// locales plug in here rather than in the selection code.
type Vocabulary struct {
	// AcademicTitles boost a line's name score when present.
	AcademicTitles []string
	// JobTitles reject a line as a name (unless the title is a strippable
	// trailing suffix) and are stripped from winning names.
	JobTitles []string
	// CompanySuffixes mark organization names (matched per word,
	// case-insensitive, trailing punctuation ignored).
	CompanySuffixes []string
	// NonNameTokens disqualify a line from name candidacy outright
	// (substring match on the lower-cased line).
	NonNameTokens []string
	// StreetIndicators mark address lines during pre-filtering.
	StreetIndicators []string
	// MobilePrefixes are digit-only prefixes that mark a phone candidate
	// as a mobile number during selection.
	MobilePrefixes []string
}

// DefaultVocabulary returns the calibrated production tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		AcademicTitles: []string{
			"Dr.", "Prof.", "Dipl.-Ing.", "Dipl.-Kfm.", "Dipl.-Inf.",
			"Mag.", "Ing.", "MBA", "M.Sc.", "B.Sc.", "M.A.", "B.A.",
			"Ph.D.", "LL.M.",
		},
		JobTitles: []string{
			"geschäftsführer", "geschäftsführerin", "inhaber", "inhaberin",
			"vorstand", "prokurist", "ceo", "cto", "cfo", "coo", "cio",
			"head of", "director", "managing", "manager", "leiter",
			"leiterin", "vertrieb", "sales", "marketing", "engineer",
			"entwickler", "developer", "consultant", "berater", "assistant",
			"assistenz", "founder", "gründer", "partner", "architekt",
		},
		CompanySuffixes: []string{
			"gmbh", "ag", "se", "kg", "kgaa", "ug", "ohg", "gbr", "mbh",
			"e.v", "inc", "ltd", "llc", "corp", "co", "plc", "s.a", "sa",
			"b.v", "bv", "oy", "ab", "sarl", "sas",
		},
		NonNameTokens: []string{
			"straße", "str.", "platz", "gmbh", "ag", "ug", "tel", "fax",
			"www", "http",
		},
		StreetIndicators: []string{
			"straße", "strasse", "str.", "platz", "weg", "allee", "gasse",
			"ring", "damm", "ufer", "chaussee", "postfach",
		},
		MobilePrefixes: []string{"491", "01"},
	}
}
