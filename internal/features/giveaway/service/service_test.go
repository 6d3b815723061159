package service

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"path-of-sharing/internal/common/config"
	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
)

const (
	testGiveawayID = "8f0c6b1e-2d3a-4c5b-9e7f-1a2b3c4d5e6f"
	testEntryID    = "1d6a7c2e-9b4f-4e1a-8c3d-5f6a7b8c9d0e"
	testSlug       = "abc123xy"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter(io.Discard, "service-test", false)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Owner.BcryptCost = bcrypt.MinCost
	cfg.Owner.TokenTTL = time.Hour
	cfg.Cache.GiveawayTTL = time.Minute
	return cfg
}

func activeGiveaway() *models.Giveaway {
	return &models.Giveaway{
		ID:          testGiveawayID,
		Slug:        testSlug,
		Title:       "Divine giveaway",
		CreatorName: "exile",
		Status:      models.GiveawayStatusActive,
		Currencies:  models.Currencies{DivineOrb: 3},
	}
}

func validCreate() *models.GiveawayCreate {
	return &models.GiveawayCreate{
		Title:         "  Mirror drop  ",
		Description:   "one mirror for the league start",
		CreatorName:   " kalandra ",
		CreatorSecret: "hunter2",
		Currencies:    models.Currencies{MirrorOfKalandra: 1, ChaosOrb: 50},
	}
}

func TestGiveawayService_Create(t *testing.T) {
	repo := new(MockGiveawayRepository)
	entries := new(MockEntryRepository)
	svc := NewGiveawayService(repo, entries, nil, testConfig())

	var stored *models.Giveaway
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Giveaway")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*models.Giveaway) }).
		Return(nil)

	resp, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "Mirror drop", resp.Title)
	assert.Equal(t, "kalandra", resp.CreatorName)
	assert.Equal(t, models.GiveawayStatusActive, resp.Status)
	assert.Nil(t, resp.WinnerID)
	assert.Zero(t, resp.EntryCount)
	assert.Len(t, resp.Slug, slugLength)
	for _, r := range resp.Slug {
		assert.True(t, strings.ContainsRune(slugAlphabet, r), "unexpected slug rune %q", r)
	}

	assert.NotEqual(t, "hunter2", stored.CreatorSecretHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.CreatorSecretHash), []byte("hunter2")))

	require.Len(t, resp.ActiveCurrencies, 2)
	assert.Equal(t, "chaos_orb", resp.ActiveCurrencies[0].Key)
	assert.Equal(t, "mirror_of_kalandra", resp.ActiveCurrencies[1].Key)
}

func TestGiveawayService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.GiveawayCreate)
		field  string
	}{
		{"empty title", func(in *models.GiveawayCreate) { in.Title = "   " }, "title"},
		{"empty creator", func(in *models.GiveawayCreate) { in.CreatorName = "" }, "creator_name"},
		{"empty secret", func(in *models.GiveawayCreate) { in.CreatorSecret = "" }, "creator_password"},
		{"negative quantity", func(in *models.GiveawayCreate) { in.Currencies.VaalOrb = -1 }, "vaal_orb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockGiveawayRepository)
			svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())

			input := validCreate()
			tt.mutate(input)

			_, err := svc.Create(context.Background(), input)
			require.Error(t, err)

			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Details["field"])
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestGiveawayService_Create_RetriesSlugCollision(t *testing.T) {
	repo := new(MockGiveawayRepository)
	svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig()).(*giveawayService)

	slugs := []string{"aaaaaaaa", "bbbbbbbb"}
	svc.newSlug = func() (string, error) {
		s := slugs[0]
		slugs = slugs[1:]
		return s, nil
	}

	repo.On("Create", mock.Anything, mock.MatchedBy(func(g *models.Giveaway) bool { return g.Slug == "aaaaaaaa" })).
		Return(repository.ErrSlugTaken).Once()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(g *models.Giveaway) bool { return g.Slug == "bbbbbbbb" })).
		Return(nil).Once()

	resp, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, "bbbbbbbb", resp.Slug)
	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestGiveawayService_Create_GivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := new(MockGiveawayRepository)
	svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())

	repo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrSlugTaken)

	_, err := svc.Create(context.Background(), validCreate())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, apperrors.CodeOf(err))
	repo.AssertNumberOfCalls(t, "Create", slugAttempts)
}

func TestGiveawayService_Create_StoreFailure(t *testing.T) {
	repo := new(MockGiveawayRepository)
	svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := svc.Create(context.Background(), validCreate())
	assert.Equal(t, apperrors.ErrCodeDatabaseError, apperrors.CodeOf(err))
}

func TestGiveawayService_TransitionStatus(t *testing.T) {
	t.Run("closes and invalidates cache", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		cache := new(MockCache)
		svc := NewGiveawayService(repo, new(MockEntryRepository), cache, testConfig())

		closed := activeGiveaway()
		closed.Status = models.GiveawayStatusClosed
		repo.On("UpdateStatus", mock.Anything, testGiveawayID, models.GiveawayStatusClosed).Return(closed, nil)
		cache.On("InvalidateGiveaway", mock.Anything, testSlug).Return(nil)

		g, err := svc.TransitionStatus(context.Background(), testGiveawayID, models.GiveawayStatusClosed)
		require.NoError(t, err)
		assert.Equal(t, models.GiveawayStatusClosed, g.Status)
		assert.Nil(t, g.WinnerID)
		cache.AssertExpectations(t)
	})

	t.Run("drawn is not a valid target", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())

		_, err := svc.TransitionStatus(context.Background(), testGiveawayID, models.GiveawayStatusDrawn)
		assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := NewGiveawayService(new(MockGiveawayRepository), new(MockEntryRepository), nil, testConfig())

		_, err := svc.TransitionStatus(context.Background(), testGiveawayID, models.GiveawayStatus("paused"))
		assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
	})

	t.Run("unknown giveaway", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())
		repo.On("UpdateStatus", mock.Anything, testGiveawayID, models.GiveawayStatusActive).
			Return(nil, repository.ErrGiveawayNotFound)

		_, err := svc.TransitionStatus(context.Background(), testGiveawayID, models.GiveawayStatusActive)
		assert.Equal(t, apperrors.ErrCodeGiveawayNotFound, apperrors.CodeOf(err))
	})
}

func TestGiveawayService_AssignWinner(t *testing.T) {
	t.Run("records winner", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())

		drawn := activeGiveaway()
		drawn.Status = models.GiveawayStatusDrawn
		winner := testEntryID
		drawn.WinnerID = &winner
		repo.On("AssignWinner", mock.Anything, testGiveawayID, testEntryID).Return(drawn, nil)

		g, err := svc.AssignWinner(context.Background(), testGiveawayID, testEntryID)
		require.NoError(t, err)
		assert.Equal(t, models.GiveawayStatusDrawn, g.Status)
		require.NotNil(t, g.WinnerID)
		assert.Equal(t, testEntryID, *g.WinnerID)
	})

	t.Run("zero rows", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())
		repo.On("AssignWinner", mock.Anything, testGiveawayID, testEntryID).Return(nil, repository.ErrGiveawayNotFound)

		_, err := svc.AssignWinner(context.Background(), testGiveawayID, testEntryID)
		assert.Equal(t, apperrors.ErrCodeGiveawayNotFound, apperrors.CodeOf(err))
	})

	t.Run("entry of another giveaway", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())
		repo.On("AssignWinner", mock.Anything, testGiveawayID, testEntryID).Return(nil, repository.ErrEntryNotFound)

		_, err := svc.AssignWinner(context.Background(), testGiveawayID, testEntryID)
		assert.Equal(t, apperrors.ErrCodeEntryNotFound, apperrors.CodeOf(err))
	})

	t.Run("driver failure", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())
		repo.On("AssignWinner", mock.Anything, testGiveawayID, testEntryID).Return(nil, errors.New("broken pipe"))

		_, err := svc.AssignWinner(context.Background(), testGiveawayID, testEntryID)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, apperrors.CodeOf(err))
	})
}

func TestGiveawayService_GetBySlug(t *testing.T) {
	t.Run("cache hit skips the store", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		entries := new(MockEntryRepository)
		cache := new(MockCache)
		svc := NewGiveawayService(repo, entries, cache, testConfig())

		cache.On("Get", mock.Anything, "giveaway:slug:"+testSlug, mock.Anything).
			Run(func(args mock.Arguments) {
				*args.Get(2).(*models.Giveaway) = *activeGiveaway()
			}).
			Return(nil)
		entries.On("CountByGiveaway", mock.Anything, testGiveawayID).Return(int64(4), nil)

		resp, err := svc.GetBySlug(context.Background(), testSlug)
		require.NoError(t, err)
		assert.Equal(t, testGiveawayID, resp.ID)
		assert.Equal(t, int64(4), resp.EntryCount)
		repo.AssertNotCalled(t, "GetBySlug", mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		entries := new(MockEntryRepository)
		cache := new(MockCache)
		cfg := testConfig()
		svc := NewGiveawayService(repo, entries, cache, cfg)

		g := activeGiveaway()
		cache.On("Get", mock.Anything, "giveaway:slug:"+testSlug, mock.Anything).Return(errors.New("cache miss"))
		repo.On("GetBySlug", mock.Anything, testSlug).Return(g, nil)
		cache.On("Set", mock.Anything, "giveaway:slug:"+testSlug, g, cfg.Cache.GiveawayTTL).Return(nil)
		entries.On("CountByGiveaway", mock.Anything, testGiveawayID).Return(int64(0), nil)

		resp, err := svc.GetBySlug(context.Background(), testSlug)
		require.NoError(t, err)
		assert.Equal(t, testSlug, resp.Slug)
		require.Len(t, resp.ActiveCurrencies, 1)
		assert.Equal(t, "divine_orb", resp.ActiveCurrencies[0].Key)
		cache.AssertExpectations(t)
	})

	t.Run("unknown slug", func(t *testing.T) {
		repo := new(MockGiveawayRepository)
		svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())
		repo.On("GetBySlug", mock.Anything, "missing1").Return(nil, repository.ErrGiveawayNotFound)

		_, err := svc.GetBySlug(context.Background(), "missing1")
		assert.Equal(t, apperrors.ErrCodeGiveawayNotFound, apperrors.CodeOf(err))
	})
}

func TestGiveawayService_List(t *testing.T) {
	repo := new(MockGiveawayRepository)
	entries := new(MockEntryRepository)
	svc := NewGiveawayService(repo, entries, nil, testConfig())

	first := activeGiveaway()
	second := activeGiveaway()
	second.ID = "0b7d8e9f-1a2b-4c3d-8e4f-5a6b7c8d9e0f"
	repo.On("List", mock.Anything, 20, 0).Return([]*models.Giveaway{first, second}, nil)
	entries.On("CountByGiveaway", mock.Anything, first.ID).Return(int64(2), nil)
	entries.On("CountByGiveaway", mock.Anything, second.ID).Return(int64(0), nil)

	list, err := svc.List(context.Background(), 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].EntryCount)
	assert.Equal(t, int64(0), list[1].EntryCount)
}

func TestGiveawayService_GetByID_RejectsMalformedID(t *testing.T) {
	repo := new(MockGiveawayRepository)
	svc := NewGiveawayService(repo, new(MockEntryRepository), nil, testConfig())

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.Equal(t, apperrors.ErrCodeGiveawayNotFound, apperrors.CodeOf(err))
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
