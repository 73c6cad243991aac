package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain address", "jane.doe@acme.com", []string{"jane.doe@acme.com"}},
		{"casing preserved", "John@Example.COM", []string{"John@Example.COM"}},
		{"embedded in text", "E-Mail: jane@acme.com (Büro)", []string{"jane@acme.com"}},
		{"mailto link", "mailto:jane@acme.com", []string{"jane@acme.com"}},
		{"mailto with query", "mailto:jane@acme.com?subject=Hi", []string{"jane@acme.com"}},
		{"mailto and bare duplicate", "mailto:Jane@Acme.com Jane@acme.com", []string{"Jane@Acme.com"}},
		{"two distinct addresses", "jane@acme.com, info@acme.com", []string{"jane@acme.com", "info@acme.com"}},
		{"no match", "Acme GmbH", nil},
		{"incomplete address", "jane@acme", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractEmails(tt.line))
		})
	}
}
