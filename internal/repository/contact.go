package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	entc "github.com/lbeckmann/cardvault/gen/ent/contact"

	"github.com/lbeckmann/cardvault/gen/ent"
	"github.com/lbeckmann/cardvault/internal/contact"
	"github.com/lbeckmann/cardvault/internal/entity"
	"github.com/lbeckmann/cardvault/internal/utils"
)

// CreateContactRequest wraps parameters for persisting a fused candidate.
type CreateContactRequest struct {
	ProfileID uuid.UUID
	Candidate contact.Candidate
	Outcome   contact.Outcome
}

type ContactRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)
	ListContacts(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*entity.Contact, error)
	CreateFromCandidate(ctx context.Context, request *CreateContactRequest) (*entity.Contact, error)
	FillMissingFields(ctx context.Context, id uuid.UUID, c contact.Candidate) (*entity.Contact, error)
}

type contactRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContactRepository(client *ent.Client, logger *slog.Logger) ContactRepository {
	return &contactRepository{
		client: client,
		logger: logger,
	}
}

func (r *contactRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	row, err := r.client.Contact.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToContact(row), nil
}

func (r *contactRepository) ListContacts(ctx context.Context, profileID uuid.UUID, from, to *time.Time) ([]*entity.Contact, error) {
	q := r.client.Contact.Query().Where(entc.ProfileID(profileID))
	if from != nil {
		q = q.Where(entc.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(entc.CreatedAtLTE(*to))
	}
	rows, err := q.Order(entc.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list contacts", "profile_id", profileID, "error", err)
		return nil, err
	}

	result := make([]*entity.Contact, len(rows))
	for i, row := range rows {
		result[i] = utils.ToContact(row)
	}
	return result, nil
}

func (r *contactRepository) CreateFromCandidate(ctx context.Context, request *CreateContactRequest) (*entity.Contact, error) {
	c := request.Candidate.Trimmed()

	builder := r.client.Contact.Create().
		SetProfileID(request.ProfileID).
		SetOutcome(request.Outcome.String())

	if c.Name != "" {
		builder = builder.SetName(c.Name)
	}
	if c.Company != "" {
		builder = builder.SetCompany(c.Company)
	}
	if c.Email != "" {
		builder = builder.SetEmail(c.Email)
	}
	if c.Phone != "" {
		builder = builder.SetPhone(c.Phone)
	}
	if c.JobTitle != "" {
		builder = builder.SetJobTitle(c.JobTitle)
	}
	if c.Website != "" {
		builder = builder.SetWebsite(c.Website)
	}
	if c.Address != "" {
		builder = builder.SetAddress(c.Address)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create contact", "profile_id", request.ProfileID, "error", err)
		return nil, err
	}
	return utils.ToContact(row), nil
}

// FillMissingFields writes only the fields that are still unset on the
// stored contact, then recomputes the outcome.
func (r *contactRepository) FillMissingFields(ctx context.Context, id uuid.UUID, c contact.Candidate) (*entity.Contact, error) {
	row, err := r.client.Contact.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c = c.Trimmed()
	builder := row.Update()
	if row.Name == nil && c.Name != "" {
		builder = builder.SetName(c.Name)
	}
	if row.Company == nil && c.Company != "" {
		builder = builder.SetCompany(c.Company)
	}
	if row.Email == nil && c.Email != "" {
		builder = builder.SetEmail(c.Email)
	}
	if row.Phone == nil && c.Phone != "" {
		builder = builder.SetPhone(c.Phone)
	}
	if row.JobTitle == nil && c.JobTitle != "" {
		builder = builder.SetJobTitle(c.JobTitle)
	}
	if row.Website == nil && c.Website != "" {
		builder = builder.SetWebsite(c.Website)
	}
	if row.Address == nil && c.Address != "" {
		builder = builder.SetAddress(c.Address)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to fill contact fields", "contact_id", id, "error", err)
		return nil, err
	}

	merged := utils.ToCandidate(updated)
	updated, err = updated.Update().SetOutcome(contact.ClassifyOutcome(merged).String()).Save(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToContact(updated), nil
}
