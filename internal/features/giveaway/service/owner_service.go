package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"path-of-sharing/internal/common/config"
	apperrors "path-of-sharing/internal/common/errors"
	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
	"path-of-sharing/internal/utils/random"
)

// 32 bytes, 256 bits of entropy
const ownerTokenBytes = 32

type ownerService struct {
	giveaways repository.GiveawayRepository
	tokens    repository.OwnerTokenRepository
	config    *config.Config
	now       func() time.Time
}

func NewOwnerService(
	giveaways repository.GiveawayRepository,
	tokens repository.OwnerTokenRepository,
	config *config.Config,
) OwnerService {
	return &ownerService{
		giveaways: giveaways,
		tokens:    tokens,
		config:    config,
		now:       time.Now,
	}
}

// VerifyOwner checks secret against the stored hash and issues a token
// scoped to this giveaway.
func (s *ownerService) VerifyOwner(ctx context.Context, slug, secret string) (*models.OwnerSession, error) {
	if secret == "" {
		return nil, apperrors.NewValidationError("password", "password cannot be empty")
	}

	giveaway, err := s.giveaways.GetBySlug(ctx, slug)
	if err != nil {
		return nil, giveawayError(err, slug, "get giveaway by slug")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(giveaway.CreatorSecretHash), []byte(secret)); err != nil {
		logger.Warn().Str("giveaway_id", giveaway.ID).Msg("Owner verification failed")
		return nil, apperrors.NewUnauthorizedError("invalid password")
	}

	token, err := random.Token(ownerTokenBytes)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to issue owner token")
	}

	ttl := s.config.Owner.TokenTTL
	session := &models.OwnerSession{
		Token:      token,
		GiveawayID: giveaway.ID,
		ExpiresAt:  s.now().Add(ttl).UTC(),
	}
	if err := s.tokens.Save(ctx, session, ttl); err != nil {
		return nil, apperrors.NewCacheError("save owner session", err)
	}

	logger.Info().Str("giveaway_id", giveaway.ID).Msg("Owner session issued")
	return session, nil
}

// AuthorizeOwner accepts token only for the giveaway it was issued for.
func (s *ownerService) AuthorizeOwner(ctx context.Context, token, giveawayID string) error {
	if token == "" {
		return apperrors.NewUnauthorizedError("missing owner token")
	}

	session, err := s.tokens.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return apperrors.NewUnauthorizedError("invalid or expired owner token")
		}
		return apperrors.NewCacheError("get owner session", err)
	}

	if session.GiveawayID != giveawayID {
		return apperrors.NewForbiddenError("token was issued for another giveaway")
	}
	return nil
}

func (s *ownerService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.NewUnauthorizedError("missing owner token")
	}
	if err := s.tokens.Delete(ctx, token); err != nil {
		return apperrors.NewCacheError("delete owner session", err)
	}
	return nil
}
