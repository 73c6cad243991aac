package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	entcredit "github.com/lbeckmann/cardvault/gen/ent/creditentry"

	"github.com/lbeckmann/cardvault/gen/ent"
)

type CreditRepository interface {
	Balance(ctx context.Context, profileID uuid.UUID) (int, error)
	Append(ctx context.Context, profileID uuid.UUID, scanID *uuid.UUID, delta int, reason string) (*ent.CreditEntry, error)
	ListEntries(ctx context.Context, profileID uuid.UUID) ([]*ent.CreditEntry, error)
}

type creditRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCreditRepository(entc *ent.Client, logger *slog.Logger) CreditRepository {
	return &creditRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *creditRepo) Balance(ctx context.Context, profileID uuid.UUID) (int, error) {
	deltas, err := r.ent.CreditEntry.Query().
		Where(entcredit.ProfileID(profileID)).
		Select(entcredit.FieldDelta).
		Ints(ctx)
	if err != nil {
		r.logger.Error("failed to sum credit entries", "profile_id", profileID, "error", err)
		return 0, err
	}
	sum := 0
	for _, d := range deltas {
		sum += d
	}
	return sum, nil
}

func (r *creditRepo) Append(ctx context.Context, profileID uuid.UUID, scanID *uuid.UUID, delta int, reason string) (*ent.CreditEntry, error) {
	builder := r.ent.CreditEntry.Create().
		SetProfileID(profileID).
		SetDelta(delta).
		SetReason(reason)
	if scanID != nil {
		builder = builder.SetScanID(*scanID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to append credit entry", "profile_id", profileID, "delta", delta, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *creditRepo) ListEntries(ctx context.Context, profileID uuid.UUID) ([]*ent.CreditEntry, error) {
	rows, err := r.ent.CreditEntry.Query().
		Where(entcredit.ProfileID(profileID)).
		Order(entcredit.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list credit entries", "profile_id", profileID, "error", err)
		return nil, err
	}
	return rows, nil
}
