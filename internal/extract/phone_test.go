package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPhones(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"international", "+49 30 1234567", []string{"+49 30 1234567"}},
		{"domestic leading zero", "030 12345678", []string{"030 12345678"}},
		{"parenthesized area code", "(030) 1234-5678", []string{"(030) 1234-5678"}},
		{"label stripped", "Tel: 030 12345678", []string{"030 12345678"}},
		{"mobile label stripped", "Mobil: +49 151 2345678", []string{"+49 151 2345678"}},
		{"too few digits", "Tel: 12345", nil},
		{"postal code is not a phone", "10115 Berlin", nil},
		{"no digits", "Jane Doe", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPhones(tt.line))
		})
	}
}

func TestSelectPhonePrefersMobile(t *testing.T) {
	prefixes := DefaultVocabulary().MobilePrefixes

	// The mobile prefix wins regardless of candidate order.
	assert.Equal(t, "+49 151 2345678",
		SelectPhone([]string{"+49 30 1234567", "+49 151 2345678"}, prefixes))
	assert.Equal(t, "+49 151 2345678",
		SelectPhone([]string{"+49 151 2345678", "+49 30 1234567"}, prefixes))
	// Domestic mobile notation counts too.
	assert.Equal(t, "0151 2345678",
		SelectPhone([]string{"+49 30 1234567", "0151 2345678"}, prefixes))
	// Without a mobile candidate the first one stands.
	assert.Equal(t, "+49 30 1234567",
		SelectPhone([]string{"+49 30 1234567", "+49 40 7654321"}, prefixes))
	assert.Equal(t, "", SelectPhone(nil, prefixes))
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "+49-151-2345678", CleanPhone("tel:+49-151-2345678"))
	assert.Equal(t, "(030) 1234567", CleanPhone("(030) 1234567"))
	assert.Equal(t, "", CleanPhone("no number here"))
}
