package constants

import "strings"

// ScanSource identifies which capture branch produced a piece of contact
// data.
type ScanSource string

const (
	SourceOCR     ScanSource = "OCR"
	SourceQRVCard ScanSource = "QR_VCARD"
	SourceQRURL   ScanSource = "QR_URL"
	SourceManual  ScanSource = "MANUAL"
)

// ScanSources holds the allowed values for the source field on card scans.
var ScanSources = []string{string(SourceOCR), string(SourceQRVCard), string(SourceQRURL), string(SourceManual)}

// QRSource classifies a raw QR payload by shape.
func QRSource(payload string) ScanSource {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(payload)), "BEGIN:VCARD") {
		return SourceQRVCard
	}
	return SourceQRURL
}
