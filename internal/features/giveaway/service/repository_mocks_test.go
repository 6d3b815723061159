package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
)

// MockGiveawayRepository is a mock implementation of repository.GiveawayRepository
type MockGiveawayRepository struct {
	mock.Mock
}

func (m *MockGiveawayRepository) BeginTx(ctx context.Context) (repository.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Transaction), args.Error(1)
}

func (m *MockGiveawayRepository) Create(ctx context.Context, giveaway *models.Giveaway) error {
	args := m.Called(ctx, giveaway)
	return args.Error(0)
}

func (m *MockGiveawayRepository) GetByID(ctx context.Context, id string) (*models.Giveaway, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Giveaway), args.Error(1)
}

func (m *MockGiveawayRepository) GetBySlug(ctx context.Context, slug string) (*models.Giveaway, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Giveaway), args.Error(1)
}

func (m *MockGiveawayRepository) GetByIDWithLock(ctx context.Context, tx repository.Transaction, id string) (*models.Giveaway, error) {
	args := m.Called(ctx, tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Giveaway), args.Error(1)
}

func (m *MockGiveawayRepository) List(ctx context.Context, limit, offset int) ([]*models.Giveaway, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Giveaway), args.Error(1)
}

func (m *MockGiveawayRepository) UpdateStatus(ctx context.Context, id string, status models.GiveawayStatus) (*models.Giveaway, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Giveaway), args.Error(1)
}

func (m *MockGiveawayRepository) AssignWinner(ctx context.Context, id, entryID string) (*models.Giveaway, error) {
	args := m.Called(ctx, id, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Giveaway), args.Error(1)
}

func (m *MockGiveawayRepository) AssignWinnerTx(ctx context.Context, tx repository.Transaction, id, entryID string) (*models.Giveaway, error) {
	args := m.Called(ctx, tx, id, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Giveaway), args.Error(1)
}

// MockEntryRepository is a mock implementation of repository.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *models.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryRepository) ExistsByAddress(ctx context.Context, giveawayID, address string) (bool, error) {
	args := m.Called(ctx, giveawayID, address)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) ListByGiveaway(ctx context.Context, giveawayID string) ([]*models.Entry, error) {
	args := m.Called(ctx, giveawayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListByGiveawayTx(ctx context.Context, tx repository.Transaction, giveawayID string) ([]*models.Entry, error) {
	args := m.Called(ctx, tx, giveawayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entry), args.Error(1)
}

func (m *MockEntryRepository) CountByGiveaway(ctx context.Context, giveawayID string) (int64, error) {
	args := m.Called(ctx, giveawayID)
	return args.Get(0).(int64), args.Error(1)
}

// MockOwnerTokenRepository is a mock implementation of repository.OwnerTokenRepository
type MockOwnerTokenRepository struct {
	mock.Mock
}

func (m *MockOwnerTokenRepository) Save(ctx context.Context, session *models.OwnerSession, ttl time.Duration) error {
	args := m.Called(ctx, session, ttl)
	return args.Error(0)
}

func (m *MockOwnerTokenRepository) Get(ctx context.Context, token string) (*models.OwnerSession, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OwnerSession), args.Error(1)
}

func (m *MockOwnerTokenRepository) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// MockTransaction records commit and rollback calls
type MockTransaction struct {
	mock.Mock
}

func (m *MockTransaction) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTransaction) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockPublisher is a mock implementation of realtime.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEntry(ctx context.Context, entry *models.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockCache is a mock implementation of Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) error {
	args := m.Called(ctx, key, dest)
	return args.Error(0)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCache) InvalidateGiveaway(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}
