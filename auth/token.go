// JWT issuance and verification. Tokens are HS256-signed with the
// process-wide secret and bind a single username claim; verification is a
// pure function of the token string and the secret, with no server-side
// session state to consult.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/authsvc-go/config"
)

// Claims defines the JWT payload: the authenticated username plus the
// standard registered claims.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed token bound to the given username.
// When cfg.TokenDuration is zero no exp claim is embedded and the token is
// valid until the signing secret changes; this matches the historical
// behavior of the API. A non-zero duration embeds an expiry.
func IssueToken(username string, cfg *config.AuthConfig) (string, error) {
	claims := &Claims{
		Username: username,
	}
	if cfg.TokenDuration > 0 {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken parses and validates a token string, returning its claims.
// It fails on malformed tokens, signature mismatches, unexpected signing
// methods and expired tokens.
func VerifyToken(tokenString string, cfg *config.AuthConfig) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	if claims.Username == "" {
		return nil, errors.New("token is missing the username claim")
	}
	return claims, nil
}
