package service

import (
	"context"
	"time"

	"github.com/spec-kit/distribution-api/internal/auth"
	"github.com/spec-kit/distribution-api/internal/config"
)

// AuthService coordinates the login flow: credential verification followed by
// token issuance. It is stateless; nothing about a login survives the request.
type AuthService struct {
	verifier *auth.Verifier
	tokens   *auth.TokenManager
}

// NewAuthService builds the service. Fails when the signing secret is missing
// so the process stops at startup instead of serving unsigned tokens.
func NewAuthService(cfg config.AuthConfig, store auth.CredentialStore) (*AuthService, error) {
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}
	return &AuthService{
		verifier: auth.NewVerifier(store),
		tokens:   tokens,
	}, nil
}

// Login authenticates an employee and mints a token on success. Errors are
// the auth package sentinels; the handler maps them to HTTP responses.
func (s *AuthService) Login(ctx context.Context, dni, secret string) (string, time.Time, error) {
	identity, err := s.verifier.Verify(ctx, dni, secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return s.tokens.Generate(*identity)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
