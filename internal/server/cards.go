package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cardspb "github.com/lbeckmann/cardvault/gen/proto/cards/v1"
	"github.com/lbeckmann/cardvault/internal/async"
	"github.com/lbeckmann/cardvault/internal/common"
	"github.com/lbeckmann/cardvault/internal/entity"
	"github.com/lbeckmann/cardvault/internal/export"
	"github.com/lbeckmann/cardvault/internal/llm"
	"github.com/lbeckmann/cardvault/internal/pipeline"
	"github.com/lbeckmann/cardvault/internal/repository"
	"github.com/lbeckmann/cardvault/internal/utils"
)

type CardServer struct {
	cardspb.UnimplementedCardsServiceServer
	processor    *pipeline.Processor
	contactsRepo repository.ContactRepository
	profilesRepo repository.ProfileRepository
	exportSvc    *export.Service
	drafter      llm.EmailDrafter // nil when LLM assist is disabled
	assistQueue  async.Queue      // nil when LLM assist is disabled
	logger       *slog.Logger
}

func NewCardServer(
	processor *pipeline.Processor,
	contactsRepo repository.ContactRepository,
	profilesRepo repository.ProfileRepository,
	exportSvc *export.Service,
	drafter llm.EmailDrafter,
	assistQueue async.Queue,
	logger *slog.Logger,
) *CardServer {
	return &CardServer{
		processor:    processor,
		contactsRepo: contactsRepo,
		profilesRepo: profilesRepo,
		exportSvc:    exportSvc,
		drafter:      drafter,
		assistQueue:  assistQueue,
		logger:       logger,
	}
}

// ScanCard runs the extraction pipeline for one captured card and returns the
// fused contact. Duplicate captures return the original contact unchanged.
func (s *CardServer) ScanCard(ctx context.Context, req *cardspb.ScanCardRequest) (*cardspb.ScanCardResponse, error) {
	profileID, err := parseUUID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetOcrText()) == "" && strings.TrimSpace(req.GetQrPayload()) == "" {
		return nil, common.InvalidArgumentError("ocr_text or qr_payload is required")
	}

	exists, err := s.profilesRepo.Exists(ctx, profileID)
	if err != nil {
		return nil, common.InternalErrorf("check profile: %v", err)
	}
	if !exists {
		return nil, common.NotFoundError(fmt.Sprintf("profile %s not found", profileID))
	}

	res, err := s.processor.ProcessScan(ctx, pipeline.ScanRequest{
		ProfileID: profileID,
		OCRText:   req.GetOcrText(),
		QRPayload: req.GetQrPayload(),
	})
	if err != nil {
		if errors.Is(err, common.ErrInsufficientCredits) {
			return nil, common.FailedPreconditionError("insufficient credits")
		}
		s.logger.Error("scan card failed", "profile_id", profileID, "error", err)
		return nil, common.InternalErrorf("scan card: %v", err)
	}

	if res.NeedsAssist && s.assistQueue != nil {
		_ = s.assistQueue.Enqueue(ctx, async.Job{
			ScanID:      res.ScanID,
			SubmittedAt: time.Now(),
			TraceID:     common.RequestIDFromContext(ctx),
		})
	}

	c, err := s.contactsRepo.GetByID(ctx, res.ContactID)
	if err != nil {
		return nil, common.InternalErrorf("load contact: %v", err)
	}

	resp := &cardspb.ScanCardResponse{
		Contact:      utils.ToPBContact(c),
		ScanId:       res.ScanID.String(),
		Deduplicated: res.Deduplicated,
		NeedsReview:  res.NeedsAssist,
	}
	if res.JobID != uuid.Nil {
		resp.JobId = res.JobID.String()
	}
	return resp, nil
}

func (s *CardServer) GetContact(ctx context.Context, req *cardspb.GetContactRequest) (*cardspb.GetContactResponse, error) {
	contactID, err := parseUUID(req.GetContactId(), "contact_id")
	if err != nil {
		return nil, err
	}

	c, err := s.contactsRepo.GetByID(ctx, contactID)
	if err != nil {
		return nil, common.NotFoundError(fmt.Sprintf("contact %s not found", contactID))
	}
	return &cardspb.GetContactResponse{Contact: utils.ToPBContact(c)}, nil
}

func (s *CardServer) ListContacts(ctx context.Context, req *cardspb.ListContactsRequest) (*cardspb.ListContactsResponse, error) {
	profileID, err := parseUUID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	s.logger.Info("listing contacts", "profile_id", profileID, "from_date", fromDate, "to_date", toDate)
	contacts, err := s.contactsRepo.ListContacts(ctx, profileID, fromDate, toDate)
	if err != nil {
		return nil, common.InternalErrorf("list contacts: %v", err)
	}

	out := make([]*cardspb.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, utils.ToPBContact(c))
	}
	return &cardspb.ListContactsResponse{Contacts: out}, nil
}

func (s *CardServer) ExportContacts(ctx context.Context, req *cardspb.ExportContactsRequest) (*cardspb.ExportContactsResponse, error) {
	profileID, err := parseUUID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}
	fromDate, toDate, err := parseDateWindow(req.GetFromDate(), req.GetToDate())
	if err != nil {
		return nil, err
	}

	data, err := s.exportSvc.ExportContactsXLSX(ctx, profileID, fromDate, toDate)
	if err != nil {
		s.logger.Error("export contacts failed", "profile_id", profileID, "error", err)
		return nil, common.InternalErrorf("export contacts: %v", err)
	}

	return &cardspb.ExportContactsResponse{
		Xlsx:     data,
		Filename: fmt.Sprintf("contacts-%s.xlsx", time.Now().UTC().Format("20060102")),
	}, nil
}

func (s *CardServer) DraftFollowUpEmail(ctx context.Context, req *cardspb.DraftFollowUpEmailRequest) (*cardspb.DraftFollowUpEmailResponse, error) {
	if s.drafter == nil {
		return nil, status.Error(codes.Unimplemented, "email drafting requires LLM assist to be enabled")
	}
	contactID, err := parseUUID(req.GetContactId(), "contact_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetSender()) == "" {
		return nil, common.InvalidArgumentError("sender is required")
	}

	c, err := s.contactsRepo.GetByID(ctx, contactID)
	if err != nil {
		return nil, common.NotFoundError(fmt.Sprintf("contact %s not found", contactID))
	}

	draftReq := llm.DraftRequest{
		Contact:  contactFields(c),
		Sender:   req.GetSender(),
		Occasion: req.GetOccasion(),
	}
	if prof, err := s.profilesRepo.GetByID(ctx, c.ProfileID); err == nil {
		draftReq.Locale = prof.Locale
	}

	body, err := s.drafter.DraftEmail(ctx, draftReq)
	if err != nil {
		s.logger.Error("draft email failed", "contact_id", contactID, "error", err)
		return nil, common.InternalErrorf("draft email: %v", err)
	}
	return &cardspb.DraftFollowUpEmailResponse{Body: body}, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, common.InvalidArgumentError(field + " is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError(field + " must be a UUID")
	}
	return id, nil
}

func parseDateWindow(from, to string) (*time.Time, *time.Time, error) {
	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(from); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &t
	}
	if td := strings.TrimSpace(to); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &t
	}
	return fromDate, toDate, nil
}

func contactFields(c *entity.Contact) llm.ContactFields {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return llm.ContactFields{
		Name:     str(c.Name),
		Company:  str(c.Company),
		Email:    str(c.Email),
		Phone:    str(c.Phone),
		JobTitle: str(c.JobTitle),
		Website:  str(c.Website),
		Address:  str(c.Address),
	}
}
