package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Fallback lifetime applied when no usable TTL is configured.
const defaultTokenTTL = 15 * time.Minute

var (
	// ErrInvalidToken covers malformed tokens, bad signatures, algorithm
	// mismatches, expired tokens and tokens without a subject.
	ErrInvalidToken = errors.New("invalid token")
)

// TokenManager issues and validates signed session tokens. Tokens are
// self-contained: subject plus expiry, nothing stored server side.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// GenerateToken builds and signs a token for the subject using the configured TTL.
func (tm *TokenManager) GenerateToken(subject string) (string, time.Time, error) {
	return tm.GenerateTokenWithTTL(subject, tm.ttl)
}

// GenerateTokenWithTTL builds and signs a token with an explicit lifetime.
// The ttl is taken as-is: a zero or negative value produces a token that is
// already expired.
func (tm *TokenManager) GenerateTokenWithTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates the token and returns its subject. Any failure mode
// collapses to ErrInvalidToken; validation never panics.
func (tm *TokenManager) ParseToken(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
