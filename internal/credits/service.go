package credits

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lbeckmann/cardvault/internal/common"
	"github.com/lbeckmann/cardvault/internal/repository"
)

const (
	reasonInitialGrant = "initial_grant"
	reasonTopUp        = "top_up"
	reasonScan         = "scan"
)

// Service implements the scan-credit ledger. Every scan debits ScanCost;
// a balance below the cost blocks further scans.
type Service struct {
	repo   repository.CreditRepository
	logger *slog.Logger

	initialGrant int
	scanCost     int
}

func NewService(repo repository.CreditRepository, cfg common.CreditsConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:         repo,
		logger:       logger,
		initialGrant: cfg.InitialGrant,
		scanCost:     cfg.ScanCost,
	}
}

// ScanCost returns the configured per-scan price.
func (s *Service) ScanCost() int {
	return s.scanCost
}

// Balance returns the sum of all ledger entries for the profile.
func (s *Service) Balance(ctx context.Context, profileID uuid.UUID) (int, error) {
	return s.repo.Balance(ctx, profileID)
}

// GrantInitial writes the one-time starting balance for a fresh profile.
func (s *Service) GrantInitial(ctx context.Context, profileID uuid.UUID) error {
	if s.initialGrant <= 0 {
		return nil
	}
	_, err := s.repo.Append(ctx, profileID, nil, s.initialGrant, reasonInitialGrant)
	if err != nil {
		return err
	}
	s.logger.Info("credits.initial_grant", "profile_id", profileID, "amount", s.initialGrant)
	return nil
}

// Grant tops up a profile's balance.
func (s *Service) Grant(ctx context.Context, profileID uuid.UUID, amount int) (int, error) {
	if amount <= 0 {
		return 0, common.NewAppError("CREDITS_ERROR", "grant amount must be positive", common.ErrInvalidInput)
	}
	if _, err := s.repo.Append(ctx, profileID, nil, amount, reasonTopUp); err != nil {
		return 0, err
	}
	s.logger.Info("credits.grant", "profile_id", profileID, "amount", amount)
	return s.repo.Balance(ctx, profileID)
}

// CanDebit reports whether the profile can pay for one scan.
func (s *Service) CanDebit(ctx context.Context, profileID uuid.UUID) (bool, error) {
	if s.scanCost == 0 {
		return true, nil
	}
	balance, err := s.repo.Balance(ctx, profileID)
	if err != nil {
		return false, err
	}
	return balance >= s.scanCost, nil
}

// DebitScan charges one scan against the profile, tied to the scan row.
func (s *Service) DebitScan(ctx context.Context, profileID, scanID uuid.UUID) error {
	if s.scanCost == 0 {
		return nil
	}
	balance, err := s.repo.Balance(ctx, profileID)
	if err != nil {
		return err
	}
	if balance < s.scanCost {
		s.logger.Warn("credits.debit_rejected", "profile_id", profileID, "balance", balance, "cost", s.scanCost)
		return common.ErrInsufficientCredits
	}
	if _, err := s.repo.Append(ctx, profileID, &scanID, -s.scanCost, reasonScan); err != nil {
		return err
	}
	s.logger.Info("credits.debit", "profile_id", profileID, "scan_id", scanID, "cost", s.scanCost)
	return nil
}
