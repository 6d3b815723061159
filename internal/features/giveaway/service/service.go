package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"golang.org/x/crypto/bcrypt"

	"path-of-sharing/internal/common/cache"
	"path-of-sharing/internal/common/config"
	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/common/validation"
	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
)

const (
	slugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	slugLength   = 8
	// attempts at a fresh slug before giving up on collisions
	slugAttempts = 3
)

type giveawayService struct {
	repo    repository.GiveawayRepository
	entries repository.EntryRepository
	cache   Cache
	config  *config.Config
	newSlug func() (string, error)
}

// NewGiveawayService builds the lifecycle manager. cache may be nil.
func NewGiveawayService(
	repo repository.GiveawayRepository,
	entries repository.EntryRepository,
	cache Cache,
	config *config.Config,
) GiveawayService {
	return &giveawayService{
		repo:    repo,
		entries: entries,
		cache:   cache,
		config:  config,
		newSlug: generateSlug,
	}
}

func generateSlug() (string, error) {
	return gonanoid.Generate(slugAlphabet, slugLength)
}

func validateCreate(input *models.GiveawayCreate) error {
	if err := validation.ValidateTitle(input.Title); err != nil {
		return apperrors.NewValidationError("title", err.Error())
	}
	if err := validation.ValidateDescription(input.Description); err != nil {
		return apperrors.NewValidationError("description", err.Error())
	}
	if err := validation.ValidateCreatorName(input.CreatorName); err != nil {
		return apperrors.NewValidationError("creator_name", err.Error())
	}
	if err := validation.ValidateCreatorSecret(input.CreatorSecret); err != nil {
		return apperrors.NewValidationError("creator_password", err.Error())
	}
	for key, quantity := range input.Currencies.Quantities() {
		if err := validation.ValidateQuantity(*quantity, key); err != nil {
			return apperrors.NewValidationError(key, err.Error())
		}
	}
	return nil
}

func (s *giveawayService) Create(ctx context.Context, input *models.GiveawayCreate) (*models.GiveawayResponse, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.CreatorSecret), s.config.Owner.BcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to hash creator password")
	}

	giveaway := &models.Giveaway{
		ID:                uuid.New().String(),
		Title:             strings.TrimSpace(input.Title),
		Description:       strings.TrimSpace(input.Description),
		CreatorName:       strings.TrimSpace(input.CreatorName),
		CreatorSecretHash: string(hash),
		StrictMode:        input.StrictMode,
		Currencies:        input.Currencies,
		Status:            models.GiveawayStatusActive,
	}

	for attempt := 1; ; attempt++ {
		giveaway.Slug, err = s.newSlug()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to generate slug")
		}

		err = s.repo.Create(ctx, giveaway)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrSlugTaken) {
			return nil, apperrors.NewDatabaseError("create giveaway", err)
		}
		if attempt == slugAttempts {
			return nil, apperrors.NewConflictError("giveaway", "could not allocate a unique slug")
		}
		logger.Warn().Str("slug", giveaway.Slug).Int("attempt", attempt).Msg("Slug collision, retrying")
	}

	logger.Info().
		Str("giveaway_id", giveaway.ID).
		Str("slug", giveaway.Slug).
		Bool("allow_strict", giveaway.StrictMode).
		Msg("Giveaway created")

	return models.NewGiveawayResponse(giveaway, 0), nil
}

func (s *giveawayService) GetByID(ctx context.Context, id string) (*models.GiveawayResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NewGiveawayNotFoundError(id)
	}

	giveaway, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, giveawayError(err, id, "get giveaway")
	}
	return s.withCount(ctx, giveaway)
}

// GetBySlug serves the public view. Cached copies carry no secret hash, so
// owner checks must read the store directly.
func (s *giveawayService) GetBySlug(ctx context.Context, slug string) (*models.GiveawayResponse, error) {
	giveaway, err := s.cachedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.withCount(ctx, giveaway)
}

func (s *giveawayService) cachedBySlug(ctx context.Context, slug string) (*models.Giveaway, error) {
	key := cache.GiveawaySlugKey(slug)

	if s.cache != nil {
		var cached models.Giveaway
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn().Err(err).Str("slug", slug).Msg("Giveaway cache read failed")
		}
	}

	giveaway, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, giveawayError(err, slug, "get giveaway by slug")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, giveaway, s.config.Cache.GiveawayTTL); err != nil {
			logger.Warn().Err(err).Str("slug", slug).Msg("Giveaway cache write failed")
		}
	}
	return giveaway, nil
}

func (s *giveawayService) List(ctx context.Context, limit, offset int) ([]*models.GiveawayResponse, error) {
	giveaways, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError("list giveaways", err)
	}

	out := make([]*models.GiveawayResponse, 0, len(giveaways))
	for _, g := range giveaways {
		resp, err := s.withCount(ctx, g)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *giveawayService) withCount(ctx context.Context, g *models.Giveaway) (*models.GiveawayResponse, error) {
	count, err := s.entries.CountByGiveaway(ctx, g.ID)
	if err != nil {
		return nil, apperrors.NewDatabaseError("count entries", err).WithContext("giveaway_id", g.ID)
	}
	return models.NewGiveawayResponse(g, count), nil
}

// TransitionStatus overwrites the status regardless of the current one.
// Only active and closed are accepted; drawn is reached through AssignWinner.
func (s *giveawayService) TransitionStatus(ctx context.Context, id string, status models.GiveawayStatus) (*models.Giveaway, error) {
	if !status.IsValid() || status == models.GiveawayStatusDrawn {
		return nil, apperrors.NewValidationError("status", "must be one of: active, closed")
	}

	giveaway, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, giveawayError(err, id, "update giveaway status")
	}

	s.invalidate(ctx, giveaway.Slug)
	logger.Info().Str("giveaway_id", id).Str("status", string(status)).Msg("Giveaway status changed")
	return giveaway, nil
}

func (s *giveawayService) AssignWinner(ctx context.Context, id, entryID string) (*models.Giveaway, error) {
	giveaway, err := s.repo.AssignWinner(ctx, id, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrEntryNotFound) {
			return nil, apperrors.NewEntryNotFoundError(entryID).WithContext("giveaway_id", id)
		}
		return nil, giveawayError(err, id, "assign winner")
	}

	s.invalidate(ctx, giveaway.Slug)
	logger.Info().Str("giveaway_id", id).Str("winner_id", entryID).Msg("Winner assigned")
	return giveaway, nil
}

func (s *giveawayService) invalidate(ctx context.Context, slug string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateGiveaway(ctx, slug); err != nil {
		logger.Warn().Err(err).Str("slug", slug).Msg("Giveaway cache invalidation failed")
	}
}
