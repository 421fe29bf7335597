package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/schoolpad/schoolpad-backend/internal/config"
)

// Claims extends JWT standard claims with the account's display name.
// Subject carries the account id.
type Claims struct {
	jwt.RegisteredClaims
	FullName string `json:"full_name"`
}

// TokenService issues and verifies signed session tokens. Verification is a
// pure computation; tokens are not revocable before natural expiry.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenService creates a TokenService from process-wide configuration.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:   []byte(cfg.TokenSecret),
		lifetime: cfg.TokenLifetime,
		now:      time.Now,
	}
}

// Issue produces a signed token for the given account with the configured
// lifetime. No side effects beyond signing.
func (s *TokenService) Issue(subjectID uuid.UUID, fullName string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
		FullName: fullName,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims. Every failure
// mode (bad signature, malformed token, expiry) collapses into the same
// ErrInvalidToken so callers cannot distinguish them.
func (s *TokenService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
