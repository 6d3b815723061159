package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
	"path-of-sharing/internal/utils/random"
)

type winnerService struct {
	giveaways repository.GiveawayRepository
	entries   repository.EntryRepository
	lifecycle GiveawayService
	cache     Cache
	pick      func(n int) (int, error)
}

// NewWinnerService builds the winner selector on top of the lifecycle
// manager. cache may be nil.
func NewWinnerService(
	giveaways repository.GiveawayRepository,
	entries repository.EntryRepository,
	lifecycle GiveawayService,
	cache Cache,
) WinnerService {
	return &winnerService{
		giveaways: giveaways,
		entries:   entries,
		lifecycle: lifecycle,
		cache:     cache,
		pick:      random.Index,
	}
}

// SelectManual records entryID as the winner. A nil error means the winner
// was written.
func (s *winnerService) SelectManual(ctx context.Context, giveawayID, entryID string) error {
	if _, err := uuid.Parse(entryID); err != nil {
		return apperrors.NewValidationError("entry_id", "must be a valid UUID")
	}

	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return apperrors.NewEntryNotFoundError(entryID)
		}
		return apperrors.NewDatabaseError("get entry", err).WithContext("entry_id", entryID)
	}
	if entry.GiveawayID != giveawayID {
		return apperrors.NewEntryNotFoundError(entryID).WithContext("giveaway_id", giveawayID)
	}

	_, err = s.lifecycle.AssignWinner(ctx, giveawayID, entryID)
	return err
}

// DrawRandom picks one entry uniformly at random and records it as the
// winner in a single transaction. The giveaway row stays locked until commit,
// so admissions for it wait and the draw sees exactly the committed entries.
// With no entries nothing is written.
func (s *winnerService) DrawRandom(ctx context.Context, giveawayID string) (*models.Entry, *models.Giveaway, error) {
	tx, err := s.giveaways.BeginTx(ctx)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeTransactionFailed, "Failed to begin transaction")
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := s.giveaways.GetByIDWithLock(ctx, tx, giveawayID); err != nil {
		return nil, nil, giveawayError(err, giveawayID, "lock giveaway")
	}

	entries, err := s.entries.ListByGiveawayTx(ctx, tx, giveawayID)
	if err != nil {
		return nil, nil, apperrors.NewDatabaseError("list entries", err).WithContext("giveaway_id", giveawayID)
	}
	if len(entries) == 0 {
		return nil, nil, apperrors.NewNoEntriesError(giveawayID)
	}

	idx, err := s.pick(len(entries))
	if err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to draw winner")
	}
	winner := entries[idx]

	giveaway, err := s.giveaways.AssignWinnerTx(ctx, tx, giveawayID, winner.ID)
	if err != nil {
		return nil, nil, giveawayError(err, giveawayID, "assign winner")
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, apperrors.Wrap(err, apperrors.ErrCodeTransactionFailed, "Failed to commit draw")
	}
	tx = nil

	if s.cache != nil {
		if err := s.cache.InvalidateGiveaway(ctx, giveaway.Slug); err != nil {
			logger.Warn().Err(err).Str("slug", giveaway.Slug).Msg("Giveaway cache invalidation failed")
		}
	}

	logger.Info().
		Str("giveaway_id", giveawayID).
		Str("winner_id", winner.ID).
		Int("entries", len(entries)).
		Msg("Winner drawn")

	return winner, giveaway, nil
}
