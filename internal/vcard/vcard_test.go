package vcard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lbeckmann/cardvault/internal/contact"
)

func TestParseBasicCard(t *testing.T) {
	raw := "BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nORG:Acme GmbH\nEMAIL:jane@acme.com\nTEL;TYPE=CELL:+491511234567\nEND:VCARD"

	got := Parse(raw)
	assert.Equal(t, contact.Candidate{
		Name:    "Jane Doe",
		Company: "Acme GmbH",
		Email:   "jane@acme.com",
		Phone:   "+491511234567",
	}, got)
	assert.True(t, got.HasData())
}

func TestParseUnfoldsContinuationLines(t *testing.T) {
	raw := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Jane \r\n Doe\r\nORG:Acme \r\n\tGmbH\r\nEND:VCARD"

	got := Parse(raw)
	assert.Equal(t, "Jane Doe", got.Name)
	assert.Equal(t, "Acme GmbH", got.Company)
}

func TestParseStructuredNameFallback(t *testing.T) {
	// N is used only when FN is absent.
	got := Parse("BEGIN:VCARD\nN:Doe;Jane;;;\nEND:VCARD")
	assert.Equal(t, "Jane Doe", got.Name)

	// FN wins even when N comes first.
	got = Parse("BEGIN:VCARD\nN:Doe;Jane;;;\nFN:Dr. Jane Doe\nEND:VCARD")
	assert.Equal(t, "Dr. Jane Doe", got.Name)

	// Partial N values drop the empty side.
	got = Parse("BEGIN:VCARD\nN:Doe\nEND:VCARD")
	assert.Equal(t, "Doe", got.Name)
}

func TestParseMobileNumberWins(t *testing.T) {
	raw := "BEGIN:VCARD\n" +
		"TEL;TYPE=WORK:+49 30 1234567\n" +
		"TEL;TYPE=CELL:+49 151 2345678\n" +
		"TEL;TYPE=CELL:+49 160 9999999\n" +
		"END:VCARD"

	// Any later mobile number overwrites, so the last CELL wins over both
	// the landline and the earlier mobile.
	got := Parse(raw)
	assert.Equal(t, "+49 160 9999999", got.Phone)

	// A trailing landline never displaces a mobile.
	raw = "BEGIN:VCARD\n" +
		"TEL;TYPE=CELL:+49 151 2345678\n" +
		"TEL;TYPE=WORK:+49 30 1234567\n" +
		"END:VCARD"
	assert.Equal(t, "+49 151 2345678", Parse(raw).Phone)
}

func TestParseBareTypeParameter(t *testing.T) {
	// vCard 2.1 writes TEL;CELL: without the TYPE= prefix.
	got := Parse("BEGIN:VCARD\nTEL;WORK:+49 30 1234567\nTEL;CELL:+49 151 2345678\nEND:VCARD")
	assert.Equal(t, "+49 151 2345678", got.Phone)
}

func TestParseQuotedPrintableValue(t *testing.T) {
	raw := "BEGIN:VCARD\nFN;ENCODING=QUOTED-PRINTABLE:J=C3=BCrgen M=C3=BCller\nEND:VCARD"

	got := Parse(raw)
	assert.Equal(t, "Jürgen Müller", got.Name)
}

func TestParseEscapedValues(t *testing.T) {
	got := Parse("BEGIN:VCARD\nORG:Acme\\, Inc.;Sales\nFN:Jane Doe\nEND:VCARD")
	assert.Equal(t, "Acme, Inc.", got.Company)
}

func TestParseAddress(t *testing.T) {
	raw := "BEGIN:VCARD\nADR;TYPE=WORK:;;Hauptstraße 5;Berlin;;10115;Germany\nEND:VCARD"

	got := Parse(raw)
	assert.Equal(t, "Hauptstraße 5, 10115 Berlin, Germany", got.Address)
}

func TestParseTitleLastOccurrenceWins(t *testing.T) {
	got := Parse("BEGIN:VCARD\nTITLE:Developer\nTITLE:CTO\nEND:VCARD")
	assert.Equal(t, "CTO", got.JobTitle)
}

func TestParseFirstOccurrenceWinsForEmailAndURL(t *testing.T) {
	raw := "BEGIN:VCARD\n" +
		"EMAIL:Jane@Acme.com\n" +
		"EMAIL:second@acme.com\n" +
		"URL:https://acme.com\n" +
		"URL:https://other.example\n" +
		"END:VCARD"

	got := Parse(raw)
	assert.Equal(t, "jane@acme.com", got.Email)
	assert.Equal(t, "https://acme.com", got.Website)
}

func TestParseDegradesPerLine(t *testing.T) {
	raw := "BEGIN:VCARD\ngarbage without separator\nFN:Jane Doe\n:empty name\nEND:VCARD"

	got := Parse(raw)
	assert.Equal(t, "Jane Doe", got.Name)
}

func TestParseMalformedInputYieldsEmptyCandidate(t *testing.T) {
	got := Parse("not a vcard at all")
	assert.False(t, got.HasData())
}

func TestParsePayloadDispatch(t *testing.T) {
	vc := ParsePayload("  begin:vcard\nFN:Jane Doe\nEND:VCARD")
	assert.Equal(t, "Jane Doe", vc.Name)

	u := ParsePayload("https://acme.com")
	assert.Equal(t, "https://acme.com", u.Website)
}
