package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"path-of-sharing/internal/features/giveaway/models"
	"path-of-sharing/internal/features/giveaway/repository"
	"path-of-sharing/internal/platform/redis"
)

const keyPrefixOwnerToken = "owner_token:"

type ownerTokenRepository struct {
	client redis.RedisClient
}

func NewOwnerTokenRepository(client redis.RedisClient) repository.OwnerTokenRepository {
	return &ownerTokenRepository{client: client}
}

func makeOwnerTokenKey(token string) string {
	return keyPrefixOwnerToken + token
}

func (r *ownerTokenRepository) Save(ctx context.Context, session *models.OwnerSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal owner session: %w", err)
	}

	if err := r.client.Set(ctx, makeOwnerTokenKey(session.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save owner session: %w", err)
	}
	return nil
}

func (r *ownerTokenRepository) Get(ctx context.Context, token string) (*models.OwnerSession, error) {
	data, err := r.client.Get(ctx, makeOwnerTokenKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get owner session: %w", err)
	}

	var session models.OwnerSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal owner session: %w", err)
	}
	return &session, nil
}

func (r *ownerTokenRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, makeOwnerTokenKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete owner session: %w", err)
	}
	return nil
}
