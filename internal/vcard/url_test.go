package vcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURLCompanyGuess(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantCompany string
	}{
		{"plain domain", "https://www.acme.com", "Acme.com"},
		{"no scheme", "acme.de", "Acme.de"},
		{"path kept out of the guess", "https://acme.com/team/jane", "Acme.com"},
		{"linkedin profile", "https://www.linkedin.com/in/janedoe", ""},
		{"xing profile", "https://xing.com/profile/jane_doe", ""},
		{"social subdomain", "https://de.linkedin.com/in/janedoe", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseURL(tt.url)
			assert.Equal(t, tt.wantCompany, got.Company)
			assert.Equal(t, tt.url, got.Website)
		})
	}
}

func TestParseURLKeepsRawValue(t *testing.T) {
	got := ParseURL("  https://acme.com  ")
	assert.Equal(t, "https://acme.com", got.Website)
}
