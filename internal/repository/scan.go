package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	entscan "github.com/lbeckmann/cardvault/gen/ent/cardscan"

	"github.com/lbeckmann/cardvault/gen/ent"
)

type CardScanRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.CardScan, error)
	GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.CardScan, error)
	Create(ctx context.Context, profileID uuid.UUID, source, ocrText, qrPayload string, hash []byte, capturedAt time.Time) (*ent.CardScan, error)
	UpsertByHash(ctx context.Context, profileID uuid.UUID, source, ocrText, qrPayload string, hash []byte, capturedAt time.Time) (*ent.CardScan, bool, error)
	LinkContact(ctx context.Context, scanID, contactID uuid.UUID) error
}

type cardScanRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewCardScanRepository(entc *ent.Client, logger *slog.Logger) CardScanRepository {
	return &cardScanRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *cardScanRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.CardScan, error) {
	return r.ent.CardScan.Get(ctx, id)
}

func (r *cardScanRepo) GetByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*ent.CardScan, error) {
	row, err := r.ent.CardScan.Query().
		Where(
			entscan.ProfileID(profileID),
			entscan.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *cardScanRepo) Create(ctx context.Context, profileID uuid.UUID, source, ocrText, qrPayload string, hash []byte, capturedAt time.Time) (*ent.CardScan, error) {
	builder := r.ent.CardScan.Create().
		SetProfileID(profileID).
		SetSource(source).
		SetContentHash(hash).
		SetCapturedAt(capturedAt)
	if ocrText != "" {
		builder = builder.SetOcrText(ocrText)
	}
	if qrPayload != "" {
		builder = builder.SetQrPayload(qrPayload)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create card scan", "profile_id", profileID, "source", source, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *cardScanRepo) UpsertByHash(ctx context.Context, profileID uuid.UUID, source, ocrText, qrPayload string, hash []byte, capturedAt time.Time) (*ent.CardScan, bool, error) {
	if existing, err := r.GetByProfileAndHash(ctx, profileID, hash); err == nil {
		return existing, true, nil
	}
	row, err := r.Create(ctx, profileID, source, ocrText, qrPayload, hash, capturedAt)
	if err != nil {
		r.logger.Error("failed to upsert card scan by hash", "profile_id", profileID, "source", source, "error", err)
		return nil, false, err
	}
	return row, false, nil
}

func (r *cardScanRepo) LinkContact(ctx context.Context, scanID, contactID uuid.UUID) error {
	err := r.ent.CardScan.UpdateOneID(scanID).SetContactID(contactID).Exec(ctx)
	if err != nil {
		r.logger.Error("failed to link scan to contact", "scan_id", scanID, "contact_id", contactID, "error", err)
	}
	return err
}
