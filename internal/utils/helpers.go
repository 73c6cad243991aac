package utils

import (
	"time"

	"github.com/lbeckmann/cardvault/gen/ent"
	cardspb "github.com/lbeckmann/cardvault/gen/proto/cards/v1"
	"github.com/lbeckmann/cardvault/internal/contact"
	"github.com/lbeckmann/cardvault/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ToPBProfile(p *entity.Profile) *cardspb.Profile {
	return &cardspb.Profile{
		Id:        p.ID.String(),
		Name:      p.Name,
		Locale:    p.Locale,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBContact(c *entity.Contact) *cardspb.Contact {
	return &cardspb.Contact{
		Id:        c.ID.String(),
		ProfileId: c.ProfileID.String(),
		Name:      strOrEmpty(c.Name),
		Company:   strOrEmpty(c.Company),
		Email:     strOrEmpty(c.Email),
		Phone:     strOrEmpty(c.Phone),
		JobTitle:  strOrEmpty(c.JobTitle),
		Website:   strOrEmpty(c.Website),
		Address:   strOrEmpty(c.Address),
		Outcome:   c.Outcome,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBCreditEntry(e *ent.CreditEntry) *cardspb.CreditEntry {
	pb := &cardspb.CreditEntry{
		Id:        e.ID.String(),
		ProfileId: e.ProfileID.String(),
		Delta:     int32(e.Delta),
		Reason:    e.Reason,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.ScanID != nil {
		pb.ScanId = e.ScanID.String()
	}
	return pb
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToProfile(e *ent.Profile) *entity.Profile {
	return &entity.Profile{
		ID:        e.ID,
		Name:      e.Name,
		Locale:    e.Locale,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToContact(e *ent.Contact) *entity.Contact {
	return &entity.Contact{
		ID:        e.ID,
		ProfileID: e.ProfileID,
		Name:      e.Name,
		Company:   e.Company,
		Email:     e.Email,
		Phone:     e.Phone,
		JobTitle:  e.JobTitle,
		Website:   e.Website,
		Address:   e.Address,
		Outcome:   e.Outcome,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ToCandidate flattens a stored contact back into extraction shape.
func ToCandidate(e *ent.Contact) contact.Candidate {
	return contact.Candidate{
		Name:     strOrEmpty(e.Name),
		Company:  strOrEmpty(e.Company),
		Email:    strOrEmpty(e.Email),
		Phone:    strOrEmpty(e.Phone),
		JobTitle: strOrEmpty(e.JobTitle),
		Website:  strOrEmpty(e.Website),
		Address:  strOrEmpty(e.Address),
	}
}
