package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
)

type admitFixture struct {
	giveaways *MockGiveawayRepository
	entries   *MockEntryRepository
	publisher *MockPublisher
	svc       EntryService
}

func newAdmitFixture() *admitFixture {
	f := &admitFixture{
		giveaways: new(MockGiveawayRepository),
		entries:   new(MockEntryRepository),
		publisher: new(MockPublisher),
	}
	f.svc = NewEntryService(f.giveaways, f.entries, f.publisher)
	return f
}

func entryInput() *models.EntryCreate {
	return &models.EntryCreate{
		GiveawayID:      testGiveawayID,
		ParticipantName: "  Tane  ",
		ClientAddress:   "203.0.113.7",
	}
}

func TestEntryService_Admit(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil)
	f.entries.On("ExistsByAddress", mock.Anything, testGiveawayID, "203.0.113.7").Return(false, nil)
	f.entries.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Entry) bool {
		return e.GiveawayID == testGiveawayID && e.ParticipantName == "Tane" && e.IPAddress == "203.0.113.7"
	})).Return(nil)
	f.publisher.On("PublishEntry", mock.Anything, mock.AnythingOfType("*models.Entry")).Return(nil)

	entry, err := f.svc.Admit(context.Background(), entryInput())
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Tane", entry.ParticipantName)

	f.giveaways.AssertExpectations(t)
	f.entries.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestEntryService_Admit_EmptyNameTouchesNothing(t *testing.T) {
	f := newAdmitFixture()
	input := entryInput()
	input.ParticipantName = " \t "

	_, err := f.svc.Admit(context.Background(), input)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, "participant_name", appErr.Details["field"])
	f.giveaways.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEntryService_Admit_UnknownGiveaway(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(nil, repository.ErrGiveawayNotFound)

	_, err := f.svc.Admit(context.Background(), entryInput())
	assert.Equal(t, apperrors.ErrCodeGiveawayNotFound, apperrors.CodeOf(err))
}

func TestEntryService_Admit_MalformedGiveawayID(t *testing.T) {
	f := newAdmitFixture()
	input := entryInput()
	input.GiveawayID = "42"

	_, err := f.svc.Admit(context.Background(), input)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
	f.giveaways.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestEntryService_Admit_ClosedGiveaway(t *testing.T) {
	for _, status := range []models.GiveawayStatus{models.GiveawayStatusClosed, models.GiveawayStatusDrawn} {
		t.Run(string(status), func(t *testing.T) {
			f := newAdmitFixture()
			g := activeGiveaway()
			g.Status = status
			f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(g, nil)

			_, err := f.svc.Admit(context.Background(), entryInput())
			assert.Equal(t, apperrors.ErrCodeGiveawayClosed, apperrors.CodeOf(err))
			f.entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestEntryService_Admit_StrictMode(t *testing.T) {
	strict := activeGiveaway()
	strict.StrictMode = true

	tests := []struct {
		name    string
		reddit  string
		link    string
		wantErr bool
	}{
		{"missing both", "", "", true},
		{"missing link", "tane", "", true},
		{"missing name", "", "https://reddit.com/u/tane", true},
		{"both present", "tane", "https://reddit.com/u/tane", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAdmitFixture()
			f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(strict, nil)
			f.entries.On("ExistsByAddress", mock.Anything, testGiveawayID, mock.Anything).Return(false, nil)
			f.entries.On("Create", mock.Anything, mock.Anything).Return(nil)
			f.publisher.On("PublishEntry", mock.Anything, mock.Anything).Return(nil)

			input := entryInput()
			input.RedditName = tt.reddit
			input.RedditProfileLink = tt.link

			entry, err := f.svc.Admit(context.Background(), input)
			if tt.wantErr {
				assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
				f.entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.reddit, entry.RedditName)
			assert.Equal(t, tt.link, entry.RedditProfileLink)
		})
	}
}

func TestEntryService_Admit_RejectsMalformedProfileLink(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil)

	input := entryInput()
	input.RedditProfileLink = "https://reddit.com/r/pathofexile"

	_, err := f.svc.Admit(context.Background(), input)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, "reddit_profile_link", appErr.Details["field"])
}

func TestEntryService_Admit_DuplicateByPreCheck(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil)
	f.entries.On("ExistsByAddress", mock.Anything, testGiveawayID, "203.0.113.7").Return(true, nil)

	_, err := f.svc.Admit(context.Background(), entryInput())
	assert.Equal(t, apperrors.ErrCodeAlreadyEntered, apperrors.CodeOf(err))
	f.entries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishEntry", mock.Anything, mock.Anything)
}

func TestEntryService_Admit_DuplicateByConstraint(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil)
	f.entries.On("ExistsByAddress", mock.Anything, testGiveawayID, "203.0.113.7").Return(false, nil)
	f.entries.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEntry)

	_, err := f.svc.Admit(context.Background(), entryInput())

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeAlreadyEntered, appErr.Code)
	assert.Equal(t, "You have already entered this giveaway", appErr.Message)
	f.publisher.AssertNotCalled(t, "PublishEntry", mock.Anything, mock.Anything)
}

func TestEntryService_Admit_DrawnBeforeInsert(t *testing.T) {
	f := newAdmitFixture()
	drawn := activeGiveaway()
	drawn.Status = models.GiveawayStatusDrawn
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil).Once()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(drawn, nil).Once()
	f.entries.On("ExistsByAddress", mock.Anything, testGiveawayID, "203.0.113.7").Return(false, nil)
	f.entries.On("Create", mock.Anything, mock.Anything).Return(repository.ErrGiveawayNotActive)

	_, err := f.svc.Admit(context.Background(), entryInput())

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeGiveawayClosed, appErr.Code)
	assert.Equal(t, string(models.GiveawayStatusDrawn), appErr.Details["status"])
	f.giveaways.AssertNumberOfCalls(t, "GetByID", 2)
	f.publisher.AssertNotCalled(t, "PublishEntry", mock.Anything, mock.Anything)
}

func TestEntryService_Admit_DeletedBeforeInsert(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil).Once()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(nil, repository.ErrGiveawayNotFound).Once()
	f.entries.On("ExistsByAddress", mock.Anything, testGiveawayID, "203.0.113.7").Return(false, nil)
	f.entries.On("Create", mock.Anything, mock.Anything).Return(repository.ErrGiveawayNotActive)

	_, err := f.svc.Admit(context.Background(), entryInput())
	assert.Equal(t, apperrors.ErrCodeGiveawayNotFound, apperrors.CodeOf(err))
}

func TestEntryService_Admit_UnknownAddressSkipsPreCheck(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil)
	f.entries.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Entry) bool {
		return e.IPAddress == models.UnknownAddress
	})).Return(nil)
	f.publisher.On("PublishEntry", mock.Anything, mock.Anything).Return(nil)

	input := entryInput()
	input.ClientAddress = ""

	_, err := f.svc.Admit(context.Background(), input)
	require.NoError(t, err)
	f.entries.AssertNotCalled(t, "ExistsByAddress", mock.Anything, mock.Anything, mock.Anything)
}

func TestEntryService_Admit_StoreFailure(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil)
	f.entries.On("ExistsByAddress", mock.Anything, testGiveawayID, mock.Anything).Return(false, nil)
	f.entries.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := f.svc.Admit(context.Background(), entryInput())
	assert.Equal(t, apperrors.ErrCodeDatabaseError, apperrors.CodeOf(err))
}

func TestEntryService_Admit_PublishFailureIsNotFatal(t *testing.T) {
	f := newAdmitFixture()
	f.giveaways.On("GetByID", mock.Anything, testGiveawayID).Return(activeGiveaway(), nil)
	f.entries.On("ExistsByAddress", mock.Anything, testGiveawayID, mock.Anything).Return(false, nil)
	f.entries.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("PublishEntry", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	entry, err := f.svc.Admit(context.Background(), entryInput())
	require.NoError(t, err)
	assert.NotNil(t, entry)
}

func TestEntryService_ListAndCount(t *testing.T) {
	f := newAdmitFixture()
	list := []*models.Entry{{ID: "a"}, {ID: "b"}}
	f.entries.On("ListByGiveaway", mock.Anything, testGiveawayID).Return(list, nil)
	f.entries.On("CountByGiveaway", mock.Anything, testGiveawayID).Return(int64(2), nil)

	got, err := f.svc.ListByGiveaway(context.Background(), testGiveawayID)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	count, err := f.svc.Count(context.Background(), testGiveawayID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
