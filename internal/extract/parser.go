// Package extract implements the OCR branch of the contact engine: per-line
// field extractors, the heuristic line classifier and the parser that
// orchestrates one pass over a card's recognized text lines.
//
// Everything in this package is a pure, synchronous transformation — no
// I/O, no logging, no shared mutable state — and safe to call concurrently
// on independent inputs.
package extract

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lbeckmann/cardvault/internal/contact"
)

// scoredLine is a line competing for one category. position is the line's
// zero-based index in the input and breaks ties for the name slot.
type scoredLine struct {
	text     string
	score    int
	position int
}

// Parser turns an ordered list of OCR lines (top of card first) into a
// contact candidate.
type Parser struct {
	classifier *Classifier
	vocab      Vocabulary
}

func NewParser(vocab Vocabulary) *Parser {
	return &Parser{classifier: NewClassifier(vocab), vocab: vocab}
}

// Classifier exposes the parser's classifier for callers that score single
// lines (manual-edit hints, tests).
func (p *Parser) Classifier() *Classifier { return p.classifier }

// Parse runs one pass over lines: field extraction first, then the
// pre-filter, then name/company scoring for the survivors. It never fails;
// a card with no usable signal yields an all-empty candidate and the caller
// decides what that means.
func (p *Parser) Parse(lines []string) contact.Candidate {
	var (
		emails, phones   []string
		names, companies []scoredLine
	)
	for i, raw := range lines {
		line := strings.TrimSpace(norm.NFC.String(raw))
		if line == "" {
			continue
		}
		ems := ExtractEmails(line)
		phs := ExtractPhones(line)
		emails = append(emails, ems...)
		phones = append(phones, phs...)
		// Lines that yielded contact data, web addresses or postal
		// addresses never compete for the name/company slots.
		if len(ems) > 0 || len(phs) > 0 {
			continue
		}
		if p.classifier.IsWebsite(line) || p.classifier.IsAddress(line) {
			continue
		}
		ns, cs := p.classifier.Classify(line, i)
		if ns > 0 {
			names = append(names, scoredLine{text: line, score: ns, position: i})
		}
		if cs > 0 {
			companies = append(companies, scoredLine{text: line, score: cs, position: i})
		}
	}

	var c contact.Candidate
	if len(emails) > 0 {
		c.Email = strings.ToLower(emails[0])
	}
	c.Phone = SelectPhone(phones, p.vocab.MobilePrefixes)
	if winner, ok := bestByScore(names, true); ok {
		cleaned := p.classifier.StripTrailingJobTitle(winner.text)
		c.Name = cleaned
		if cleaned != winner.text {
			c.JobTitle = strings.Trim(winner.text[len(cleaned):], " \t,|-–")
		}
	}
	if winner, ok := bestByScore(companies, false); ok {
		c.Company = winner.text
	}
	return c
}

// bestByScore picks the highest-scoring candidate. With positional tie-break
// the earlier line wins on equal scores; without it the first-encountered
// candidate stands (strict-greater comparison over a stable slice).
func bestByScore(cands []scoredLine, positional bool) (scoredLine, bool) {
	if len(cands) == 0 {
		return scoredLine{}, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.score > best.score {
			best = c
			continue
		}
		if positional && c.score == best.score && c.position < best.position {
			best = c
		}
	}
	return best, true
}
