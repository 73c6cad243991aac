package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lbeckmann/cardvault/constants"
	"github.com/lbeckmann/cardvault/internal/common"
	"github.com/lbeckmann/cardvault/internal/contact"
	"github.com/lbeckmann/cardvault/internal/credits"
	"github.com/lbeckmann/cardvault/internal/extract"
	"github.com/lbeckmann/cardvault/internal/repository"
	"github.com/lbeckmann/cardvault/internal/vcard"
)

// ScanRequest carries one captured card through the pipeline.
type ScanRequest struct {
	ProfileID  uuid.UUID
	OCRText    string
	QRPayload  string
	CapturedAt time.Time
}

// ScanResult summarizes what a scan produced.
type ScanResult struct {
	ContactID    uuid.UUID
	ScanID       uuid.UUID
	JobID        uuid.UUID
	Outcome      contact.Outcome
	Deduplicated bool
	NeedsAssist  bool
}

// Processor coordinates heuristic extraction, QR fusion, persistence, and
// credit accounting for card scans.
type Processor struct {
	logger       *slog.Logger
	parser       *extract.Parser
	scansRepo    repository.CardScanRepository
	jobsRepo     repository.ExtractJobRepository
	contactsRepo repository.ContactRepository
	credits      *credits.Service
}

func NewProcessor(
	logger *slog.Logger,
	parser *extract.Parser,
	scansRepo repository.CardScanRepository,
	jobsRepo repository.ExtractJobRepository,
	contactsRepo repository.ContactRepository,
	creditsSvc *credits.Service,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:       logger,
		parser:       parser,
		scansRepo:    scansRepo,
		jobsRepo:     jobsRepo,
		contactsRepo: contactsRepo,
		credits:      creditsSvc,
	}
}

// ProcessScan runs the OCR branch and, when a QR payload is present, the QR
// branch, fuses both candidates, and persists the result. Duplicate scans
// (same profile, same content hash) return the original contact and are not
// charged.
func (p *Processor) ProcessScan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	ok, err := p.credits.CanDebit(ctx, req.ProfileID)
	if err != nil {
		return ScanResult{}, fmt.Errorf("check credits: %w", err)
	}
	if !ok {
		return ScanResult{}, fmt.Errorf("profile %s: %w", req.ProfileID, common.ErrInsufficientCredits)
	}

	source := constants.SourceOCR
	if req.QRPayload != "" {
		source = constants.QRSource(req.QRPayload)
	}

	capturedAt := req.CapturedAt
	if capturedAt.IsZero() {
		capturedAt = time.Now()
	}

	hash := scanHash(req.OCRText, req.QRPayload)
	scan, deduped, err := p.scansRepo.UpsertByHash(ctx, req.ProfileID, string(source), req.OCRText, req.QRPayload, hash, capturedAt)
	if err != nil {
		return ScanResult{}, fmt.Errorf("store scan: %w", err)
	}
	if deduped && scan.ContactID != nil {
		p.logger.Info("pipeline.scan.deduplicated", "scan_id", scan.ID, "contact_id", *scan.ContactID)
		return ScanResult{ContactID: *scan.ContactID, ScanID: scan.ID, Deduplicated: true}, nil
	}

	job, err := p.jobsRepo.Start(ctx, scan.ID, req.ProfileID, constants.JobStatusRunning)
	if err != nil {
		return ScanResult{ScanID: scan.ID}, fmt.Errorf("start job: %w", err)
	}

	ocrCand := p.parser.Parse(splitLines(req.OCRText))

	var qrCand *contact.Candidate
	if req.QRPayload != "" {
		c := vcard.ParsePayload(req.QRPayload)
		qrCand = &c
	}

	merged := contact.Merge(ocrCand, qrCand)
	outcome := contact.ClassifyOutcome(merged)

	row, err := p.contactsRepo.CreateFromCandidate(ctx, &repository.CreateContactRequest{
		ProfileID: req.ProfileID,
		Candidate: merged,
		Outcome:   outcome,
	})
	if err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return ScanResult{ScanID: scan.ID, JobID: job.ID}, fmt.Errorf("store contact: %w", err)
	}

	if err := p.scansRepo.LinkContact(ctx, scan.ID, row.ID); err != nil {
		_ = p.jobsRepo.FinishFailure(ctx, job.ID, err.Error())
		return ScanResult{ScanID: scan.ID, JobID: job.ID}, err
	}

	extracted, _ := json.Marshal(merged)
	if err := p.jobsRepo.FinishExtractSuccess(ctx, job.ID, row.ID, extracted); err != nil {
		return ScanResult{ScanID: scan.ID, JobID: job.ID}, err
	}

	if err := p.credits.DebitScan(ctx, req.ProfileID, scan.ID); err != nil {
		return ScanResult{ContactID: row.ID, ScanID: scan.ID, JobID: job.ID, Outcome: outcome}, err
	}

	p.logger.Info("pipeline.scan.ok",
		"scan_id", scan.ID,
		"contact_id", row.ID,
		"source", string(source),
		"outcome", outcome.String(),
	)
	return ScanResult{
		ContactID:   row.ID,
		ScanID:      scan.ID,
		JobID:       job.ID,
		Outcome:     outcome,
		NeedsAssist: outcome != contact.OutcomeComplete && strings.TrimSpace(req.OCRText) != "",
	}, nil
}

func scanHash(ocrText, qrPayload string) []byte {
	h := sha256.New()
	h.Write([]byte(ocrText))
	h.Write([]byte{0})
	h.Write([]byte(qrPayload))
	return h.Sum(nil)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
