package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"path-of-sharing/internal/features/giveaway/models"
)

type MockGiveawayService struct {
	mock.Mock
}

func (m *MockGiveawayService) Create(ctx context.Context, input *models.GiveawayCreate) (*models.GiveawayResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GiveawayResponse), args.Error(1)
}

func (m *MockGiveawayService) GetByID(ctx context.Context, id string) (*models.GiveawayResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GiveawayResponse), args.Error(1)
}

func (m *MockGiveawayService) GetBySlug(ctx context.Context, slug string) (*models.GiveawayResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GiveawayResponse), args.Error(1)
}

func (m *MockGiveawayService) List(ctx context.Context, limit, offset int) ([]*models.GiveawayResponse, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GiveawayResponse), args.Error(1)
}

func (m *MockGiveawayService) TransitionStatus(ctx context.Context, id string, status models.GiveawayStatus) (*models.Giveaway, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Giveaway), args.Error(1)
}

func (m *MockGiveawayService) AssignWinner(ctx context.Context, id, entryID string) (*models.Giveaway, error) {
	args := m.Called(ctx, id, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Giveaway), args.Error(1)
}

type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) Admit(ctx context.Context, input *models.EntryCreate) (*models.Entry, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryService) ListByGiveaway(ctx context.Context, giveawayID string) ([]*models.Entry, error) {
	args := m.Called(ctx, giveawayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entry), args.Error(1)
}

func (m *MockEntryService) Count(ctx context.Context, giveawayID string) (int64, error) {
	args := m.Called(ctx, giveawayID)
	return args.Get(0).(int64), args.Error(1)
}

type MockWinnerService struct {
	mock.Mock
}

func (m *MockWinnerService) SelectManual(ctx context.Context, giveawayID, entryID string) error {
	args := m.Called(ctx, giveawayID, entryID)
	return args.Error(0)
}

func (m *MockWinnerService) DrawRandom(ctx context.Context, giveawayID string) (*models.Entry, *models.Giveaway, error) {
	args := m.Called(ctx, giveawayID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.Entry), args.Get(1).(*models.Giveaway), args.Error(2)
}

type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) VerifyOwner(ctx context.Context, slug, secret string) (*models.OwnerSession, error) {
	args := m.Called(ctx, slug, secret)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OwnerSession), args.Error(1)
}

func (m *MockOwnerService) AuthorizeOwner(ctx context.Context, token, giveawayID string) error {
	args := m.Called(ctx, token, giveawayID)
	return args.Error(0)
}

func (m *MockOwnerService) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
