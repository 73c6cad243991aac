package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cardspb "github.com/lbeckmann/cardvault/gen/proto/cards/v1"
	"github.com/lbeckmann/cardvault/gen/ent"
	"github.com/lbeckmann/cardvault/internal/repository"
)

type stubProfileRepo struct {
	exists bool
}

func (s *stubProfileRepo) GetByID(context.Context, uuid.UUID) (*ent.Profile, error) {
	return nil, &ent.NotFoundError{}
}

func (s *stubProfileRepo) CreateProfile(context.Context, *repository.Profile) (*ent.Profile, error) {
	return nil, nil
}

func (s *stubProfileRepo) ListProfiles(context.Context) ([]*ent.Profile, error) {
	return nil, nil
}

func (s *stubProfileRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return s.exists, nil
}

func TestScanCardRejectsUnknownProfile(t *testing.T) {
	s := NewCardServer(nil, nil, &stubProfileRepo{exists: false}, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := s.ScanCard(context.Background(), &cardspb.ScanCardRequest{
		ProfileId: uuid.NewString(),
		OcrText:   "Jane Doe\nAcme GmbH",
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestScanCardRequiresInput(t *testing.T) {
	s := NewCardServer(nil, nil, &stubProfileRepo{exists: true}, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := s.ScanCard(context.Background(), &cardspb.ScanCardRequest{
		ProfileId: uuid.NewString(),
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
