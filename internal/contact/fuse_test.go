package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeWithoutQRIsIdentity(t *testing.T) {
	c := Candidate{Name: "Jane Doe", Email: "jane@acme.com", Phone: "+49 151 2345678"}

	assert.Equal(t, c, Merge(c, nil))
	// A QR candidate without data behaves like no QR candidate at all,
	// even when it carries a website.
	assert.Equal(t, c, Merge(c, &Candidate{Website: "https://acme.com"}))
}

func TestMergeFieldLevelPrecedence(t *testing.T) {
	tests := []struct {
		name string
		ocr  Candidate
		qr   Candidate
		want Candidate
	}{
		{
			name: "qr wins on conflict",
			ocr:  Candidate{Name: "Jane Do", Email: "jane@acme.com"},
			qr:   Candidate{Name: "Jane Doe", Email: "j.doe@acme.com"},
			want: Candidate{Name: "Jane Doe", Email: "j.doe@acme.com"},
		},
		{
			name: "disjoint fields combine",
			ocr:  Candidate{Name: "Jane Doe"},
			qr:   Candidate{Email: "jane@acme.com"},
			want: Candidate{Name: "Jane Doe", Email: "jane@acme.com"},
		},
		{
			name: "ocr fills qr gaps per field",
			ocr:  Candidate{Name: "Jane Doe", Company: "Acme GmbH", Phone: "+49 30 1234567"},
			qr:   Candidate{Phone: "+49 151 2345678", Website: "https://acme.com"},
			want: Candidate{Name: "Jane Doe", Company: "Acme GmbH", Phone: "+49 151 2345678", Website: "https://acme.com"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.qr.HasData())
			assert.Equal(t, tt.want, Merge(tt.ocr, &tt.qr))
		})
	}
}

func TestHasData(t *testing.T) {
	assert.False(t, Candidate{}.HasData())
	assert.False(t, Candidate{Website: "https://acme.com", Address: "Berlin", JobTitle: "CEO"}.HasData())
	assert.True(t, Candidate{Phone: "+49 151 2345678"}.HasData())
}

func TestClassifyOutcome(t *testing.T) {
	assert.Equal(t, OutcomeEmpty, ClassifyOutcome(Candidate{}))
	assert.Equal(t, OutcomePartial, ClassifyOutcome(Candidate{Name: "Jane Doe"}))
	assert.Equal(t, OutcomeComplete, ClassifyOutcome(Candidate{
		Name: "Jane Doe", Company: "Acme GmbH", Email: "jane@acme.com", Phone: "+49 151 2345678",
	}))
}
