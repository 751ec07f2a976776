package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/authsvc-go/config"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{JWTSecret: "test-secret"}
}

func TestIssueAndVerifyToken(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	tok, err := IssueToken("alice", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := VerifyToken(tok, cfg)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	// No duration configured, so no expiry is embedded.
	assert.Nil(t, claims.ExpiresAt)
}

func TestIssueToken_WithDuration(t *testing.T) {
	t.Parallel()

	cfg := &config.AuthConfig{JWTSecret: "test-secret", TokenDuration: time.Hour}
	tok, err := IssueToken("alice", cfg)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, cfg)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("alice", testAuthConfig())
	require.NoError(t, err)

	_, err = VerifyToken(tok, &config.AuthConfig{JWTSecret: "another-secret"})
	assert.Error(t, err)
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := VerifyToken("not.a.jwt", testAuthConfig())
	assert.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	// Craft an already-expired token with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tok, err := expired.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = VerifyToken(tok, cfg)
	assert.Error(t, err)
}

func TestVerifyToken_MissingUsernameClaim(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{})
	tok, err := anonymous.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = VerifyToken(tok, cfg)
	assert.Error(t, err)
}
