package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("GROCERY_DB_USER", "grocer")
	t.Setenv("GROCERY_DB_NAME", "grocery_store_db")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 5432, cfg.DBPort)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 10*time.Minute, cfg.TokenTTL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GROCERY_ENV", "production")
	t.Setenv("GROCERY_LOG_LEVEL", "warn")
	t.Setenv("GROCERY_DB_HOST", "db.internal")
	t.Setenv("GROCERY_DB_PORT", "6432")
	t.Setenv("GROCERY_DB_USER", "grocer")
	t.Setenv("GROCERY_DB_PASSWORD", "secret")
	t.Setenv("GROCERY_DB_NAME", "grocery_store_db")
	t.Setenv("GROCERY_DB_SSLMODE", "require")
	t.Setenv("GROCERY_TOKEN_TTL", "30m")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 6432, cfg.DBPort)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t,
		"host=db.internal port=6432 user=grocer password=secret dbname=grocery_store_db sslmode=require",
		cfg.DSN())
}

func TestFromEnvValidation(t *testing.T) {
	t.Run("missing db user", func(t *testing.T) {
		t.Setenv("GROCERY_DB_USER", "")
		t.Setenv("GROCERY_DB_NAME", "grocery_store_db")

		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("unknown log level", func(t *testing.T) {
		t.Setenv("GROCERY_DB_USER", "grocer")
		t.Setenv("GROCERY_DB_NAME", "grocery_store_db")
		t.Setenv("GROCERY_LOG_LEVEL", "verbose")

		_, err := FromEnv()
		assert.Error(t, err)
	})
}

func TestBotEnabled(t *testing.T) {
	cfg := defaults()
	assert.Error(t, cfg.BotEnabled())

	cfg.BotToken = "token"
	cfg.AdminPasswordHash = "$2a$10$hash"
	assert.Error(t, cfg.BotEnabled())

	cfg.JWTSecret = "jwt"
	assert.NoError(t, cfg.BotEnabled())
}
