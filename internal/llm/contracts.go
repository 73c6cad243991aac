package llm

import "context"

type ProfileContext struct {
	ProfileName string `json:"profile_name,omitempty"`
	Locale      string `json:"locale,omitempty"`
}

// ContactFields is the normalized shape we want from the LLM.
type ContactFields struct {
	Name            string  `json:"name,omitempty"`
	Company         string  `json:"company,omitempty"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	JobTitle        string  `json:"job_title,omitempty"`
	Website         string  `json:"website,omitempty"`
	Address         string  `json:"address,omitempty"`
	ModelConfidence float32 `json:"confidence,omitempty"` // optional (0..1)
}

type ExtractRequest struct {
	OCRText       string
	QRPayload     string
	MissingFields []string // only these may be filled in

	Profile ProfileContext
}

// DraftRequest carries everything needed to draft a follow-up email.
type DraftRequest struct {
	Contact  ContactFields
	Sender   string
	Occasion string // e.g. "met at trade fair"
	Locale   string
}

// FieldExtractor is the interface our pipeline depends on.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (ContactFields, []byte /*rawJSON*/, error)
}

// EmailDrafter writes a short follow-up email for a stored contact.
type EmailDrafter interface {
	DraftEmail(ctx context.Context, req DraftRequest) (string, error)
}
