package llm

import (
	"strings"
)

// BuildSystemPrompt composes the system message with the fields the model may
// fill and strict-but-practical formatting rules.
func BuildSystemPrompt(req ExtractRequest) string {
	var fieldLine string
	if len(req.MissingFields) > 0 {
		fieldLine = "Fill ONLY these fields, everything else is already known: " +
			strings.Join(req.MissingFields, ", ") + ". "
	} else {
		fieldLine = "Fill every field you can read from the card. "
	}

	var ctxBits []string
	if n := strings.TrimSpace(req.Profile.ProfileName); n != "" {
		ctxBits = append(ctxBits, "Profile: "+n+".")
	}
	if l := strings.TrimSpace(req.Profile.Locale); l != "" {
		ctxBits = append(ctxBits, "Card locale: "+l+".")
	}

	parts := []string{
		"You are a business card parser. Return ONLY JSON that matches the provided JSON Schema.",
		fieldLine,
		"The 'name' is the person, never the company. Company legal forms (GmbH, AG, Inc, Ltd) belong in 'company'.",
		"Keep phone numbers exactly as printed, including the country code.",
		"Lowercase the 'email'. Keep 'website' as printed.",
		"For 'address', join street, postal code with city, and country with commas.",
		"Never output null. If a field is not readable, omit it.",
	}
	if len(ctxBits) > 0 {
		parts = append(parts, "Context: "+strings.Join(ctxBits, " "))
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt packages the raw card text. QR payloads go in verbatim since
// they often carry fields the OCR missed.
func BuildUserPrompt(req ExtractRequest) string {
	var b strings.Builder

	ocr := strings.TrimSpace(req.OCRText)
	b.WriteString("Card text (first ~3k chars):\n")
	if len(ocr) > 3000 {
		b.WriteString(ocr[:3000])
		b.WriteString("\n…(truncated)")
	} else {
		b.WriteString(ocr)
	}

	if qr := strings.TrimSpace(req.QRPayload); qr != "" {
		b.WriteString("\n\nQR payload:\n")
		b.WriteString(qr)
	}

	return b.String()
}

// BuildDraftSystemPrompt composes the system message for follow-up email
// drafting.
func BuildDraftSystemPrompt(req DraftRequest) string {
	parts := []string{
		"You write short, professional follow-up emails after a first meeting.",
		"Return ONLY the email body as plain text, no subject line, no signature placeholders.",
		"Keep it under 120 words.",
	}
	if l := strings.TrimSpace(req.Locale); l != "" {
		parts = append(parts, "Write in the language of locale: "+l+".")
	}
	return strings.Join(parts, " ")
}

// BuildDraftUserPrompt packages the contact and occasion for email drafting.
func BuildDraftUserPrompt(req DraftRequest) string {
	var b strings.Builder
	b.WriteString("Recipient: ")
	b.WriteString(req.Contact.Name)
	if req.Contact.JobTitle != "" {
		b.WriteString(" (")
		b.WriteString(req.Contact.JobTitle)
		b.WriteString(")")
	}
	if req.Contact.Company != "" {
		b.WriteString(" at ")
		b.WriteString(req.Contact.Company)
	}
	b.WriteString("\nSender: ")
	b.WriteString(req.Sender)
	if o := strings.TrimSpace(req.Occasion); o != "" {
		b.WriteString("\nOccasion: ")
		b.WriteString(o)
	}
	return b.String()
}
