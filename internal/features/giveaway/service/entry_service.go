package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/common/validation"
	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/realtime"
	"path-of-sharing/internal/features/giveaway/repository"
)

type entryService struct {
	giveaways repository.GiveawayRepository
	entries   repository.EntryRepository
	publisher realtime.Publisher
}

// NewEntryService builds the admission guard. publisher may be nil.
func NewEntryService(
	giveaways repository.GiveawayRepository,
	entries repository.EntryRepository,
	publisher realtime.Publisher,
) EntryService {
	return &entryService{
		giveaways: giveaways,
		entries:   entries,
		publisher: publisher,
	}
}

// Admit records one entry per giveaway and client address. The address check
// runs before the insert and the store's unique index catches the requests
// that race past it; both report ALREADY_ENTERED.
func (s *entryService) Admit(ctx context.Context, input *models.EntryCreate) (*models.Entry, error) {
	name := strings.TrimSpace(input.ParticipantName)
	if err := validation.ValidateParticipantName(name); err != nil {
		return nil, apperrors.NewValidationError("participant_name", err.Error())
	}
	if _, err := uuid.Parse(input.GiveawayID); err != nil {
		return nil, apperrors.NewValidationError("giveaway_id", "must be a valid UUID")
	}

	giveaway, err := s.giveaways.GetByID(ctx, input.GiveawayID)
	if err != nil {
		return nil, giveawayError(err, input.GiveawayID, "get giveaway")
	}
	if !giveaway.IsActive() {
		return nil, apperrors.NewGiveawayClosedError(giveaway.ID, string(giveaway.Status))
	}

	redditName := strings.TrimSpace(input.RedditName)
	redditLink := strings.TrimSpace(input.RedditProfileLink)

	if giveaway.StrictMode && (redditName == "" || redditLink == "") {
		return nil, apperrors.NewValidationError("reddit_profile_link", "Reddit name and profile link are required for this giveaway")
	}
	if err := validation.ValidateRedditName(redditName); err != nil {
		return nil, apperrors.NewValidationError("reddit_name", err.Error())
	}
	if redditLink != "" {
		if err := validation.ValidateRedditProfileLink(redditLink); err != nil {
			return nil, apperrors.NewValidationError("reddit_profile_link", err.Error())
		}
	}

	address := strings.TrimSpace(input.ClientAddress)
	if address == "" {
		address = models.UnknownAddress
	}

	if address != models.UnknownAddress {
		exists, err := s.entries.ExistsByAddress(ctx, giveaway.ID, address)
		if err != nil {
			return nil, apperrors.NewDatabaseError("check existing entry", err).WithContext("giveaway_id", giveaway.ID)
		}
		if exists {
			return nil, apperrors.NewAlreadyEnteredError(giveaway.ID)
		}
	}

	entry := &models.Entry{
		ID:                uuid.New().String(),
		GiveawayID:        giveaway.ID,
		ParticipantName:   name,
		RedditName:        redditName,
		RedditProfileLink: redditLink,
		IPAddress:         address,
	}

	if err := s.entries.Create(ctx, entry); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEntry):
			logger.Debug().Str("giveaway_id", giveaway.ID).Msg("Duplicate entry rejected by unique index")
			return nil, apperrors.NewAlreadyEnteredError(giveaway.ID)
		case errors.Is(err, repository.ErrGiveawayNotFound):
			return nil, apperrors.NewGiveawayNotFoundError(giveaway.ID)
		case errors.Is(err, repository.ErrGiveawayNotActive):
			return nil, s.closedSince(ctx, giveaway)
		}
		return nil, apperrors.NewDatabaseError("create entry", err).WithContext("giveaway_id", giveaway.ID)
	}

	logger.Info().
		Str("giveaway_id", giveaway.ID).
		Str("entry_id", entry.ID).
		Msg("Entry admitted")

	s.publish(ctx, entry)
	return entry, nil
}

// publish notifies live viewers. The entry is already committed, so a failure
// here is only logged.
func (s *entryService) publish(ctx context.Context, entry *models.Entry) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEntry(ctx, entry); err != nil {
		logger.Error().Err(err).
			Str("giveaway_id", entry.GiveawayID).
			Str("entry_id", entry.ID).
			Msg("Failed to publish entry")
	}
}

func (s *entryService) ListByGiveaway(ctx context.Context, giveawayID string) ([]*models.Entry, error) {
	entries, err := s.entries.ListByGiveaway(ctx, giveawayID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list entries", err).WithContext("giveaway_id", giveawayID)
	}
	return entries, nil
}

func (s *entryService) Count(ctx context.Context, giveawayID string) (int64, error) {
	count, err := s.entries.CountByGiveaway(ctx, giveawayID)
	if err != nil {
		return 0, apperrors.NewDatabaseError("count entries", err).WithContext("giveaway_id", giveawayID)
	}
	return count, nil
}

// closedSince reports a giveaway that left the active state between the
// status check and the insert, typically because a draw committed.
func (s *entryService) closedSince(ctx context.Context, giveaway *models.Giveaway) error {
	current, err := s.giveaways.GetByID(ctx, giveaway.ID)
	if err != nil {
		if errors.Is(err, repository.ErrGiveawayNotFound) {
			return apperrors.NewGiveawayNotFoundError(giveaway.ID)
		}
		logger.Warn().Err(err).Str("giveaway_id", giveaway.ID).Msg("Failed to reload closed giveaway")
		return apperrors.NewGiveawayClosedError(giveaway.ID, string(models.GiveawayStatusClosed))
	}
	logger.Debug().
		Str("giveaway_id", giveaway.ID).
		Str("status", string(current.Status)).
		Msg("Giveaway closed before entry insert")
	return apperrors.NewGiveawayClosedError(current.ID, string(current.Status))
}
