package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Score weights and thresholds, calibrated against real business-card text.
// They are part of the observable behavior; do not re-derive them.
const (
	nameTitleBonus     = 30 // academic title present
	nameCapitalBonus   = 20 // every word starts uppercase
	namePositionBonus  = 15 // line sits in the top third of the card
	nameWordCountBonus = 10 // two or three words
	nameHyphenBonus    = 5  // double names
	nameMinScore       = 15 // acceptance threshold

	minNameWords    = 2
	maxNameWords    = 6
	maxNameSpecials = 2 // runes besides letters, whitespace, '-' and '.'
	topPositionMax  = 3

	companySuffixBonus    = 50 // legal-form suffix (GmbH, Inc., …)
	companyUppercaseBonus = 25 // whole line uppercase
	companyJoinerBonus    = 10 // contains '&' or '+'

	strongNameScore  = 20 // a name score above this …
	weakCompanyScore = 40 // … suppresses a company score below this
)

// Classifier assigns per-line heuristic scores for the name and company
// categories. It is stateless apart from the injected vocabulary and safe
// for concurrent use.
type Classifier struct {
	vocab     Vocabulary
	suffixSet map[string]struct{}
}

func NewClassifier(vocab Vocabulary) *Classifier {
	c := &Classifier{
		vocab:     vocab,
		suffixSet: make(map[string]struct{}, len(vocab.CompanySuffixes)),
	}
	for _, s := range vocab.CompanySuffixes {
		c.suffixSet[normalizeToken(s)] = struct{}{}
	}
	return c
}

// Classify scores line for both categories and applies the mutual-exclusion
// rule: a strong name signal suppresses a weak company signal, so a line
// never wins the company slot on incidental evidence when it reads like a
// person's name.
func (c *Classifier) Classify(line string, position int) (nameScore, companyScore int) {
	nameScore = c.ScoreName(line, position)
	companyScore = c.ScoreCompany(line)
	if nameScore > strongNameScore && companyScore < weakCompanyScore {
		companyScore = 0
	}
	return nameScore, companyScore
}

// ScoreName rates how much line looks like a person's full name. position is
// the line's zero-based index on the card, top first. A non-positive result
// means the line is rejected for the category.
func (c *Classifier) ScoreName(line string, position int) int {
	words := strings.Fields(line)
	if len(words) < minNameWords || len(words) > maxNameWords {
		return 0
	}
	specials := 0
	for _, r := range line {
		if unicode.IsDigit(r) {
			return 0
		}
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '-' && r != '.' {
			specials++
		}
	}
	if specials > maxNameSpecials {
		return 0
	}
	lower := strings.ToLower(line)
	for _, tok := range c.vocab.NonNameTokens {
		if strings.Contains(lower, tok) {
			return 0
		}
	}
	// A job title hanging off the end ("Jane Doe, CEO") is cleaned later;
	// a title anywhere else disqualifies the line.
	if c.isJobTitle(c.StripTrailingJobTitle(line)) {
		return 0
	}

	score := 0
	if c.containsAcademicTitle(line) {
		score += nameTitleBonus
	}
	if allWordsCapitalized(words) {
		score += nameCapitalBonus
	}
	if position < topPositionMax {
		score += namePositionBonus
	}
	if len(words) == 2 || len(words) == 3 {
		score += nameWordCountBonus
	}
	if strings.Contains(line, "-") {
		score += nameHyphenBonus
	}
	if score < nameMinScore {
		return 0
	}
	return score
}

// ScoreCompany rates how much line looks like an organization name.
func (c *Classifier) ScoreCompany(line string) int {
	score := 0
	if c.hasCompanySuffix(line) {
		score += companySuffixBonus
	}
	if isShoutedLine(line) {
		score += companyUppercaseBonus
	}
	if strings.ContainsAny(line, "&+") {
		score += companyJoinerBonus
	}
	return score
}

// StripTrailingJobTitle removes job-title tokens hanging off the end of a
// line, together with the separating comma or space: "Jane Doe, CEO" becomes
// "Jane Doe". Lines without a trailing title come back unchanged.
func (c *Classifier) StripTrailingJobTitle(line string) string {
	for changed := true; changed; {
		changed = false
		lower := strings.ToLower(line)
		for _, t := range c.vocab.JobTitles {
			if !strings.HasSuffix(lower, t) || len(line) <= len(t) {
				continue
			}
			rest := strings.TrimRight(line[:len(line)-len(t)], " \t,|-–")
			if rest == "" {
				continue
			}
			line = rest
			changed = true
			break
		}
	}
	return line
}

func (c *Classifier) isJobTitle(line string) bool {
	lower := strings.ToLower(line)
	for _, t := range c.vocab.JobTitles {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func (c *Classifier) containsAcademicTitle(line string) bool {
	lower := strings.ToLower(line)
	for _, t := range c.vocab.AcademicTitles {
		if strings.Contains(lower, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func (c *Classifier) hasCompanySuffix(line string) bool {
	for _, w := range strings.Fields(line) {
		if _, ok := c.suffixSet[normalizeToken(w)]; ok {
			return true
		}
	}
	return false
}

// normalizeToken lower-cases a word and trims surrounding punctuation so
// "GmbH," and "S.A." compare against the suffix table.
func normalizeToken(s string) string {
	return strings.Trim(strings.ToLower(s), ".,;:()")
}

func allWordsCapitalized(words []string) bool {
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// isShoutedLine reports an all-uppercase line with at least one letter and
// more than three characters — typical for logo-style company names.
func isShoutedLine(line string) bool {
	if utf8.RuneCountInString(line) <= 3 || line != strings.ToUpper(line) {
		return false
	}
	for _, r := range line {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
