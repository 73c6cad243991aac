package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lbeckmann/cardvault/internal/contact"
)

func TestParseFullCard(t *testing.T) {
	p := NewParser(DefaultVocabulary())

	got := p.Parse([]string{
		"Dr. Jane Doe",
		"Acme GmbH",
		"jane@acme.com",
		"+49 30 1234567",
		"www.acme.com",
	})

	assert.Equal(t, contact.Candidate{
		Name:    "Dr. Jane Doe",
		Company: "Acme GmbH",
		Email:   "jane@acme.com",
		Phone:   "+49 30 1234567",
	}, got)
}

func TestParseLowercasesEmail(t *testing.T) {
	p := NewParser(DefaultVocabulary())

	got := p.Parse([]string{"John@Example.COM"})
	assert.Equal(t, "john@example.com", got.Email)
}

func TestParsePrefersMobileAcrossLines(t *testing.T) {
	p := NewParser(DefaultVocabulary())

	got := p.Parse([]string{
		"Jane Doe",
		"+49 30 1234567",
		"+49 151 2345678",
	})
	assert.Equal(t, "+49 151 2345678", got.Phone)
}

func TestParseStripsTrailingJobTitle(t *testing.T) {
	p := NewParser(DefaultVocabulary())

	got := p.Parse([]string{
		"Jane Doe, CEO",
		"Acme GmbH",
	})
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "CEO", got.JobTitle)
	assert.Equal(t, "Acme GmbH", got.Company)
}

func TestParseNameTieBreaksOnPosition(t *testing.T) {
	p := NewParser(DefaultVocabulary())

	// Both lines score identically; the earlier one wins.
	got := p.Parse([]string{
		"Jane Doe",
		"Erika Muster",
	})
	assert.Equal(t, "Jane Doe", got.Name)
}

func TestParseSkipsAddressAndWebsiteLines(t *testing.T) {
	p := NewParser(DefaultVocabulary())

	got := p.Parse([]string{
		"Hauptstraße 5",
		"10115 Berlin",
		"www.acme.com",
	})
	assert.Equal(t, contact.Candidate{}, got)
	assert.False(t, got.HasData())
}

func TestParseEmptyInput(t *testing.T) {
	p := NewParser(DefaultVocabulary())

	assert.Equal(t, contact.Candidate{}, p.Parse(nil))
	assert.Equal(t, contact.Candidate{}, p.Parse([]string{"", "   ", "\t"}))
}
