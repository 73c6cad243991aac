package server

import (
	"context"
	"log/slog"

	cardspb "github.com/lbeckmann/cardvault/gen/proto/cards/v1"
	"github.com/lbeckmann/cardvault/internal/common"
	"github.com/lbeckmann/cardvault/internal/credits"
	"github.com/lbeckmann/cardvault/internal/repository"
	"github.com/lbeckmann/cardvault/internal/utils"
)

type CreditServer struct {
	cardspb.UnimplementedCreditsServiceServer
	svc    *credits.Service
	repo   repository.CreditRepository
	logger *slog.Logger
}

func NewCreditServer(svc *credits.Service, repo repository.CreditRepository, logger *slog.Logger) *CreditServer {
	return &CreditServer{
		svc:    svc,
		repo:   repo,
		logger: logger,
	}
}

func (s *CreditServer) GetBalance(ctx context.Context, req *cardspb.GetBalanceRequest) (*cardspb.GetBalanceResponse, error) {
	profileID, err := parseUUID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}

	balance, err := s.svc.Balance(ctx, profileID)
	if err != nil {
		return nil, common.InternalErrorf("get balance: %v", err)
	}
	return &cardspb.GetBalanceResponse{Balance: int32(balance)}, nil
}

func (s *CreditServer) GrantCredits(ctx context.Context, req *cardspb.GrantCreditsRequest) (*cardspb.GrantCreditsResponse, error) {
	profileID, err := parseUUID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}
	if req.GetAmount() <= 0 {
		return nil, common.InvalidArgumentError("amount must be positive")
	}

	balance, err := s.svc.Grant(ctx, profileID, int(req.GetAmount()))
	if err != nil {
		s.logger.Error("grant credits failed", "profile_id", profileID, "error", err)
		return nil, common.InternalErrorf("grant credits: %v", err)
	}
	return &cardspb.GrantCreditsResponse{Balance: int32(balance)}, nil
}

func (s *CreditServer) ListCreditEntries(ctx context.Context, req *cardspb.ListCreditEntriesRequest) (*cardspb.ListCreditEntriesResponse, error) {
	profileID, err := parseUUID(req.GetProfileId(), "profile_id")
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListEntries(ctx, profileID)
	if err != nil {
		return nil, common.InternalErrorf("list credit entries: %v", err)
	}

	out := make([]*cardspb.CreditEntry, 0, len(rows))
	for _, e := range rows {
		out = append(out, utils.ToPBCreditEntry(e))
	}
	return &cardspb.ListCreditEntriesResponse{Entries: out}, nil
}
