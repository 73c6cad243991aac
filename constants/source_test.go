package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQRSource(t *testing.T) {
	assert.Equal(t, SourceQRVCard, QRSource("BEGIN:VCARD\nFN:Jane\nEND:VCARD"))
	assert.Equal(t, SourceQRVCard, QRSource("  begin:vcard\n"))
	assert.Equal(t, SourceQRURL, QRSource("https://acme.com"))
	assert.Equal(t, SourceQRURL, QRSource("plain text"))
}
