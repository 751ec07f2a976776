package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnvForTest removes a variable for the duration of the test.
// t.Setenv registers the restore cleanup; the follow-up Unsetenv makes the
// variable truly absent rather than empty, which LookupEnv distinguishes.
func unsetEnvForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "authsvc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "authsvc")
	t.Setenv("SECRET_KEY", "test-secret")
	// Optional variables must be absent so the defaults are observable
	// regardless of the ambient environment.
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_POOL_SIZE", "PORT", "JWT_TOKEN_DURATION"} {
		unsetEnvForTest(t, key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 10, cfg.DB.MaxSize)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	// Tokens carry no expiry unless explicitly configured.
	assert.Equal(t, time.Duration(0), cfg.Auth.TokenDuration)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_TOKEN_DURATION", "24h")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("DB_USER", "authsvc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "authsvc")
	unsetEnvForTest(t, "SECRET_KEY")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadConfig_CollectsAllErrors(t *testing.T) {
	unsetEnvForTest(t, "DB_USER")
	unsetEnvForTest(t, "DB_PASSWORD")
	unsetEnvForTest(t, "DB_NAME")
	unsetEnvForTest(t, "SECRET_KEY")

	_, err := LoadConfig()
	require.Error(t, err)
	// Every missing variable is reported at once.
	assert.Contains(t, err.Error(), "DB_USER")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.Contains(t, err.Error(), "SECRET_KEY")
}

func TestLoadConfig_BadDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_TOKEN_DURATION", "not-a-duration")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_TOKEN_DURATION")
}

func TestLoadConfig_PoolSizeClamped(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_POOL_SIZE", "2")

	// Clamping is reported as a configuration error rather than applied
	// silently.
	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_POOL_SIZE")
}
