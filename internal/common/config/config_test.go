package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Owner.TokenTTL)
	assert.Equal(t, 10, cfg.Owner.BcryptCost)
	assert.Equal(t, 30*time.Second, cfg.Cache.GiveawayTTL)
	assert.False(t, cfg.Postgres.AutoMigrate)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("OWNER_TOKEN_TTL", "2h")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2*time.Hour, cfg.Owner.TokenTTL)
	assert.True(t, cfg.Postgres.AutoMigrate)
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
	assert.Equal(t, "postgres://postgres:secret@db:5432/path_of_sharing?sslmode=disable", cfg.Postgres.GetDSN())
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
