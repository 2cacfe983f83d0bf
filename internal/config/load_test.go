package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv provides the keys Load cannot default. t.Setenv also
// marks the test as unparallelizable, which keeps the env mutations safe.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKDECK_DATABASE_URL", "postgres://localhost:5432/taskdeck_test")
	t.Setenv("TASKDECK_AUTH_JWT_SECRET", "test-secret-that-is-at-least-32-chars-long")
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/taskdeck_test", cfg.Database.URL)
	assert.Equal(t, "test-secret-that-is-at-least-32-chars-long", cfg.Auth.JWTSecret)

	// Defaults fill in everything that was not set.
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10080, cfg.Auth.RefreshTokenLifetimeMinutes)
	assert.Equal(t, 0, cfg.Auth.BcryptCost)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKDECK_SERVER_PORT", "9090")
	t.Setenv("TASKDECK_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKDECK_AUTH_TOKEN_LIFETIME_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 5, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("TASKDECK_DATABASE_URL", "postgres://localhost:5432/taskdeck_test")
	t.Setenv("TASKDECK_AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("TASKDECK_DATABASE_URL", "postgres://localhost:5432/taskdeck_test")
	t.Setenv("TASKDECK_AUTH_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKDECK_SERVER_LOG_LEVEL", "loud")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
