package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreNameRejections(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	tests := []struct {
		name string
		line string
		pos  int
	}{
		{"single word", "Siemens", 0},
		{"too many words", "One Two Three Four Five Six Seven", 0},
		{"contains digit", "Team7 Solutions", 0},
		{"too many specials", "Jane @ Doe & Co!", 0},
		{"street blocklist", "Hauptstraße Zwölf", 0},
		{"legal form blocklist", "Acme GmbH", 0},
		{"pure job title", "Senior Sales Manager", 0},
		{"below threshold", "kleine worte hier", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, c.ScoreName(tt.line, tt.pos))
		})
	}
}

func TestScoreNameBonuses(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	// Capitalized two-word name at the top of the card:
	// +20 caps, +15 position, +10 word count.
	assert.Equal(t, 45, c.ScoreName("Jane Doe", 0))
	// Same line further down loses the position bonus.
	assert.Equal(t, 30, c.ScoreName("Jane Doe", 4))
	// Academic title adds +30.
	assert.Equal(t, 75, c.ScoreName("Dr. Jane Doe", 0))
	// Double name adds the hyphen bonus.
	assert.Equal(t, 50, c.ScoreName("Jane Doe-Schmidt", 0))
}

func TestScoreCompany(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	// Legal-form suffix, matched per word and ignoring punctuation.
	assert.Equal(t, 50, c.ScoreCompany("Acme GmbH"))
	assert.Equal(t, 50, c.ScoreCompany("Acme Widgets Inc."))
	// Shouted line plus suffix plus joiner.
	assert.Equal(t, 85, c.ScoreCompany("MEYER & PARTNER GMBH"))
	// Suffix must be its own word.
	assert.Equal(t, 0, c.ScoreCompany("Magdeburger Bäckerei"))
	assert.Equal(t, 0, c.ScoreCompany("Jane Doe"))
}

func TestClassifyMutualExclusion(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	// Reads like a name, weak company evidence (&): company is suppressed.
	nameScore, companyScore := c.Classify("Müller & Söhne", 0)
	assert.Greater(t, nameScore, strongNameScore)
	assert.Zero(t, companyScore)

	// Strong company evidence survives even when the line also scores as
	// a name.
	nameScore, companyScore = c.Classify("Acme Inc", 0)
	assert.Greater(t, nameScore, strongNameScore)
	assert.Equal(t, 50, companyScore)
}

func TestStripTrailingJobTitle(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	assert.Equal(t, "Jane Doe", c.StripTrailingJobTitle("Jane Doe, CEO"))
	assert.Equal(t, "Jane Doe", c.StripTrailingJobTitle("Jane Doe, Sales Manager"))
	assert.Equal(t, "Jane Doe", c.StripTrailingJobTitle("Jane Doe"))
	// A line that is nothing but a title stays untouched; rejection is
	// the scorer's job.
	assert.Equal(t, "CEO", c.StripTrailingJobTitle("CEO"))
}

func TestPreFilters(t *testing.T) {
	c := NewClassifier(DefaultVocabulary())

	assert.True(t, c.IsWebsite("www.acme.com"))
	assert.True(t, c.IsWebsite("https://acme.com/team"))
	assert.True(t, c.IsWebsite("acme.de"))
	assert.False(t, c.IsWebsite("Acme GmbH"))

	assert.True(t, c.IsAddress("Hauptstraße 5"))
	assert.True(t, c.IsAddress("10115 Berlin"))
	assert.False(t, c.IsAddress("Jane Doe"))
}
