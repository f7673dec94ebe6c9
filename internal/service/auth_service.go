package service

import (
	"context"
	"fmt"
	"time"

	"fashionhub/internal/model"

	"github.com/rs/zerolog"
)

// Authenticator checks admin credentials.
type Authenticator interface {
	Authenticate(identity, password string) error
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(identity string) (string, time.Time, error)
}

// authService implements AuthService.
type authService struct {
	authenticator Authenticator
	tokens        TokenIssuer
	logger        zerolog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(authenticator Authenticator, tokens TokenIssuer, logger zerolog.Logger) AuthService {
	return &authService{
		authenticator: authenticator,
		tokens:        tokens,
		logger:        logger.With().Str("service", "auth").Logger(),
	}
}

// Login checks the credentials and issues a session token for the admin.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req == nil {
		return nil, model.NewValidationError("login request is required")
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	identity := req.Identity()
	if err := s.authenticator.Authenticate(identity, req.Password); err != nil {
		s.logger.Warn().Str("identity", identity).Msg("admin login rejected")
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		s.logger.Error().Err(err).Str("identity", identity).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().
		Str("identity", identity).
		Time("expires_at", expiresAt).
		Msg("admin logged in")

	return &model.LoginResponse{
		Message:   "Login successful",
		Token:     token,
		ExpiresAt: expiresAt,
		User: model.AdminUser{
			Email:   identity,
			IsAdmin: true,
		},
	}, nil
}
