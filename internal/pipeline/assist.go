package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lbeckmann/cardvault/constants"
	"github.com/lbeckmann/cardvault/internal/contact"
	"github.com/lbeckmann/cardvault/internal/entity"
	"github.com/lbeckmann/cardvault/internal/llm"
	"github.com/lbeckmann/cardvault/internal/repository"
)

// Assistant fills contact fields the heuristics left empty by asking an LLM.
// Heuristic results are never overwritten.
type Assistant struct {
	logger       *slog.Logger
	extractor    llm.FieldExtractor
	scansRepo    repository.CardScanRepository
	jobsRepo     repository.ExtractJobRepository
	contactsRepo repository.ContactRepository
	profilesRepo repository.ProfileRepository
	modelName    string
}

func NewAssistant(
	logger *slog.Logger,
	extractor llm.FieldExtractor,
	scansRepo repository.CardScanRepository,
	jobsRepo repository.ExtractJobRepository,
	contactsRepo repository.ContactRepository,
	profilesRepo repository.ProfileRepository,
	modelName string,
) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{
		logger:       logger,
		extractor:    extractor,
		scansRepo:    scansRepo,
		jobsRepo:     jobsRepo,
		contactsRepo: contactsRepo,
		profilesRepo: profilesRepo,
		modelName:    modelName,
	}
}

// AssistScan loads the scan's contact, determines which fields are still
// missing, and fills only those from the LLM response.
func (a *Assistant) AssistScan(ctx context.Context, scanID uuid.UUID) error {
	scan, err := a.scansRepo.GetByID(ctx, scanID)
	if err != nil {
		return fmt.Errorf("load scan: %w", err)
	}
	if scan.ContactID == nil {
		return fmt.Errorf("scan %s has no contact", scanID)
	}

	row, err := a.contactsRepo.GetByID(ctx, *scan.ContactID)
	if err != nil {
		return fmt.Errorf("load contact: %w", err)
	}

	missing := missingFields(row)
	if len(missing) == 0 {
		a.logger.Debug("pipeline.assist.nothing_missing", "contact_id", row.ID)
		return nil
	}

	job, err := a.jobsRepo.Start(ctx, scanID, scan.ProfileID, constants.JobStatusRunning)
	if err != nil {
		return fmt.Errorf("start job: %w", err)
	}

	req := llm.ExtractRequest{
		MissingFields: missing,
	}
	if scan.OcrText != nil {
		req.OCRText = *scan.OcrText
	}
	if scan.QrPayload != nil {
		req.QRPayload = *scan.QrPayload
	}
	if prof, err := a.profilesRepo.GetByID(ctx, scan.ProfileID); err == nil {
		req.Profile = llm.ProfileContext{ProfileName: prof.Name, Locale: prof.Locale}
	}

	fields, raw, err := a.extractor.ExtractFields(ctx, req)
	if err != nil {
		_ = a.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return fmt.Errorf("llm extract: %w", err)
	}

	updated, err := a.contactsRepo.FillMissingFields(ctx, row.ID, contact.Candidate{
		Name:     fields.Name,
		Company:  fields.Company,
		Email:    fields.Email,
		Phone:    fields.Phone,
		JobTitle: fields.JobTitle,
		Website:  fields.Website,
		Address:  fields.Address,
	})
	if err != nil {
		_ = a.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return fmt.Errorf("fill contact: %w", err)
	}

	if err := a.jobsRepo.FinishLLMSuccess(ctx, job.ID, updated.ID, raw, a.modelName, map[string]any{
		"missing_fields": missing,
		"confidence":     fields.ModelConfidence,
		"updated_at":     time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return err
	}

	a.logger.Info("pipeline.assist.ok",
		"contact_id", updated.ID,
		"filled", missing,
		"outcome", updated.Outcome,
	)
	return nil
}

func missingFields(c *entity.Contact) []string {
	var missing []string
	add := func(key string, v *string) {
		if v == nil || *v == "" {
			missing = append(missing, key)
		}
	}
	add("name", c.Name)
	add("company", c.Company)
	add("email", c.Email)
	add("phone", c.Phone)
	add("job_title", c.JobTitle)
	add("website", c.Website)
	add("address", c.Address)
	return missing
}
