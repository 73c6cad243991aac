package server

import (
	"context"
	"log/slog"

	cardspb "github.com/lbeckmann/cardvault/gen/proto/cards/v1"
	"github.com/lbeckmann/cardvault/internal/profiles"
	"github.com/lbeckmann/cardvault/internal/utils"
)

type ProfileServer struct {
	cardspb.UnimplementedProfilesServiceServer
	svc    *profiles.Service
	logger *slog.Logger
}

func NewProfileServer(svc *profiles.Service, logger *slog.Logger) *ProfileServer {
	return &ProfileServer{
		svc:    svc,
		logger: logger,
	}
}

// CreateProfile creates a new profile.
func (s *ProfileServer) CreateProfile(ctx context.Context, req *cardspb.CreateProfileRequest) (*cardspb.CreateProfileResponse, error) {
	// Convert gRPC request to service request
	serviceReq := profiles.CreateProfileRequest{
		Name:   req.GetName(),
		Locale: req.GetLocale(),
	}

	// Call service layer (pure business logic)
	p, err := s.svc.CreateProfile(ctx, serviceReq)
	if err != nil {
		return nil, err
	}

	return &cardspb.CreateProfileResponse{
		Profile: utils.ToPBProfile(p),
	}, nil
}

// ListProfiles lists all the profiles.
func (s *ProfileServer) ListProfiles(ctx context.Context, _ *cardspb.ListProfilesRequest) (*cardspb.ListProfilesResponse, error) {
	// Call service layer (pure business logic)
	plist, err := s.svc.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	// Convert service response to gRPC response
	out := make([]*cardspb.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToPBProfile(p))
	}
	return &cardspb.ListProfilesResponse{Profiles: out}, nil
}
