package profiles

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lbeckmann/cardvault/internal/common"
	"github.com/lbeckmann/cardvault/internal/credits"
	"github.com/lbeckmann/cardvault/internal/entity"
	"github.com/lbeckmann/cardvault/internal/repository"
	"github.com/lbeckmann/cardvault/internal/utils"
)

const defaultLocale = "de"

// Service handles profile business logic.
type Service struct {
	profileRepo repository.ProfileRepository
	credits     *credits.Service
	logger      *slog.Logger
}

// NewService creates a new profile service.
func NewService(profileRepo repository.ProfileRepository, creditsSvc *credits.Service, logger *slog.Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		credits:     creditsSvc,
		logger:      logger,
	}
}

// CreateProfileRequest represents profile creation parameters.
type CreateProfileRequest struct {
	Name   string
	Locale string
}

// CreateProfile creates a new profile and grants its starting credit balance.
func (s *Service) CreateProfile(ctx context.Context, req CreateProfileRequest) (*entity.Profile, error) {
	name := strings.TrimSpace(req.Name)
	locale := strings.ToLower(strings.TrimSpace(req.Locale))
	if locale == "" {
		locale = defaultLocale
	}

	v := common.NewValidator().
		Field("name", name, common.Required, func(f string, val interface{}) *common.ValidationError {
			return common.MaxLength(f, val, 120)
		}).
		Field("locale", locale, common.Locale)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	p, err := s.profileRepo.CreateProfile(ctx, &repository.Profile{
		Name:   name,
		Locale: locale,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "create profile: %v", err)
	}

	if err := s.credits.GrantInitial(ctx, p.ID); err != nil {
		s.logger.Error("initial credit grant failed", "profile_id", p.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "grant initial credits: %v", err)
	}

	s.logger.Info("profile created successfully", "profile_id", p.ID, "name", p.Name)
	return utils.ToProfile(p), nil
}

// ListProfiles returns all profiles.
func (s *Service) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	s.logger.Info("listing profiles")

	plist, err := s.profileRepo.ListProfiles(ctx)
	if err != nil {
		// DB error already logged in repository layer
		return nil, status.Errorf(codes.Internal, "list profiles: %v", err)
	}

	s.logger.Info("profiles listed successfully", "count", len(plist))

	out := make([]*entity.Profile, 0, len(plist))
	for _, p := range plist {
		out = append(out, utils.ToProfile(p))
	}
	return out, nil
}
