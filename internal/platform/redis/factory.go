package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"path-of-sharing/internal/common/config"
	"path-of-sharing/internal/common/logger"
)

// RedisClient is the subset of go-redis used by the service. Repositories
// depend on it instead of *redis.Client so tests can substitute it.
type RedisClient interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	PSubscribe(ctx context.Context, patterns ...string) *redis.PubSub
	Close() error
}

// CreateRedisClient connects to the configured instance and pings it.
func CreateRedisClient(ctx context.Context, cfg *config.Config) (RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info().
		Str("addr", cfg.RedisAddr()).
		Int("db", cfg.Redis.DB).
		Msg("Redis client initialized")

	return &redisClientWrapper{client: client}, nil
}

type redisClientWrapper struct {
	client *redis.Client
}

func (w *redisClientWrapper) Ping(ctx context.Context) *redis.StatusCmd {
	return w.client.Ping(ctx)
}

func (w *redisClientWrapper) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return w.client.Set(ctx, key, value, ttl)
}

func (w *redisClientWrapper) Get(ctx context.Context, key string) *redis.StringCmd {
	return w.client.Get(ctx, key)
}

func (w *redisClientWrapper) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return w.client.Del(ctx, keys...)
}

func (w *redisClientWrapper) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	return w.client.Publish(ctx, channel, message)
}

func (w *redisClientWrapper) PSubscribe(ctx context.Context, patterns ...string) *redis.PubSub {
	return w.client.PSubscribe(ctx, patterns...)
}

func (w *redisClientWrapper) Close() error {
	return w.client.Close()
}
