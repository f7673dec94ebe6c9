// Package auth issues and verifies admin session tokens and checks admin credentials.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fashionhub/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "fashionhub"

// Claims are the session token claims. Email is the admin identity.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 session tokens. It holds no
// per-token state; a token stops being valid only when it expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Option customises a TokenService.
type Option func(*TokenService)

// WithClock replaces the wall clock, used for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService creates a token service signing with secret. Tokens live for ttl.
func NewTokenService(secret []byte, ttl time.Duration, opts ...Option) *TokenService {
	s := &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for identity and returns it with its expiry.
func (s *TokenService) Issue(identity string) (string, time.Time, error) {
	if identity == "" {
		return "", time.Time{}, fmt.Errorf("cannot issue token without identity")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := Claims{
		Email: identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   identity,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify checks the signature and expiry of raw and returns the embedded identity.
// It fails with model.ErrTokenMissing, model.ErrTokenExpired or model.ErrTokenInvalid.
func (s *TokenService) Verify(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", model.ErrTokenMissing
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrTokenInvalid
	}

	if !token.Valid || claims.Email == "" {
		return "", model.ErrTokenInvalid
	}

	return claims.Email, nil
}

// BearerToken strips an optional "Bearer " prefix from an Authorization header value.
func BearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
