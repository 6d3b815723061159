package repository

import (
	"context"
	"errors"
	"time"

	"path-of-sharing/internal/features/giveaway/models"
)

var (
	ErrGiveawayNotFound = errors.New("giveaway not found")
	ErrEntryNotFound    = errors.New("entry not found")
	// ErrDuplicateEntry is returned when the store's uniqueness constraint
	// rejects a second entry for the same giveaway and address.
	ErrDuplicateEntry = errors.New("entry already exists for this address")
	ErrSlugTaken      = errors.New("slug already taken")
	// ErrGiveawayNotActive is returned by EntryRepository.Create when the
	// giveaway is missing or no longer active at insert time.
	ErrGiveawayNotActive = errors.New("giveaway is not accepting entries")
	ErrTokenNotFound  = errors.New("owner token not found or expired")
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type GiveawayRepository interface {
	BeginTx(ctx context.Context) (Transaction, error)

	Create(ctx context.Context, giveaway *models.Giveaway) error
	GetByID(ctx context.Context, id string) (*models.Giveaway, error)
	GetBySlug(ctx context.Context, slug string) (*models.Giveaway, error)
	GetByIDWithLock(ctx context.Context, tx Transaction, id string) (*models.Giveaway, error)
	List(ctx context.Context, limit, offset int) ([]*models.Giveaway, error)

	// UpdateStatus overwrites the status and clears winner_id.
	UpdateStatus(ctx context.Context, id string, status models.GiveawayStatus) (*models.Giveaway, error)
	// AssignWinner sets winner_id and status=drawn in one statement.
	AssignWinner(ctx context.Context, id, entryID string) (*models.Giveaway, error)
	AssignWinnerTx(ctx context.Context, tx Transaction, id, entryID string) (*models.Giveaway, error)
}

type EntryRepository interface {
	Create(ctx context.Context, entry *models.Entry) error
	GetByID(ctx context.Context, id string) (*models.Entry, error)
	ExistsByAddress(ctx context.Context, giveawayID, address string) (bool, error)
	ListByGiveaway(ctx context.Context, giveawayID string) ([]*models.Entry, error)
	ListByGiveawayTx(ctx context.Context, tx Transaction, giveawayID string) ([]*models.Entry, error)
	CountByGiveaway(ctx context.Context, giveawayID string) (int64, error)
}

// OwnerTokenRepository stores owner session tokens with expiry.
type OwnerTokenRepository interface {
	Save(ctx context.Context, session *models.OwnerSession, ttl time.Duration) error
	// Get returns ErrTokenNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (*models.OwnerSession, error)
	Delete(ctx context.Context, token string) error
}
