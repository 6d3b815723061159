package service

import (
	"context"
	"time"

	"path-of-sharing/internal/features/giveaway/models"
)

// GiveawayService manages the giveaway lifecycle.
type GiveawayService interface {
	Create(ctx context.Context, input *models.GiveawayCreate) (*models.GiveawayResponse, error)
	GetByID(ctx context.Context, id string) (*models.GiveawayResponse, error)
	GetBySlug(ctx context.Context, slug string) (*models.GiveawayResponse, error)
	List(ctx context.Context, limit, offset int) ([]*models.GiveawayResponse, error)
	TransitionStatus(ctx context.Context, id string, status models.GiveawayStatus) (*models.Giveaway, error)
	AssignWinner(ctx context.Context, id, entryID string) (*models.Giveaway, error)
}

// EntryService admits participants and serves entry reads.
type EntryService interface {
	Admit(ctx context.Context, input *models.EntryCreate) (*models.Entry, error)
	ListByGiveaway(ctx context.Context, giveawayID string) ([]*models.Entry, error)
	Count(ctx context.Context, giveawayID string) (int64, error)
}

// WinnerService records the winner of a giveaway.
type WinnerService interface {
	SelectManual(ctx context.Context, giveawayID, entryID string) error
	DrawRandom(ctx context.Context, giveawayID string) (*models.Entry, *models.Giveaway, error)
}

// OwnerService turns a verified creator secret into an expiring owner token.
type OwnerService interface {
	VerifyOwner(ctx context.Context, slug, secret string) (*models.OwnerSession, error)
	AuthorizeOwner(ctx context.Context, token, giveawayID string) error
	Revoke(ctx context.Context, token string) error
}

// Cache is the read-through cache for public giveaway reads.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	InvalidateGiveaway(ctx context.Context, slug string) error
}
