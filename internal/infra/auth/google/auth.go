// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"aurelise/config"
	"aurelise/internal/domain/entity"
	"aurelise/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// TokenValidator checks the signature, expiry and audience of an ID token.
type TokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google.
type AuthServiceImpl struct {
	clientID string
	validate TokenValidator
	logger   *slog.Logger
}

// NewAuthService creates a Google ID token verifier backed by Google's public certificates.
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return NewAuthServiceWithValidator(cfg, logger, idtoken.Validate)
}

// NewAuthServiceWithValidator creates a verifier with a custom token validator.
func NewAuthServiceWithValidator(cfg *config.Config, logger *slog.Logger, validate TokenValidator) *AuthServiceImpl {
	var clientID string
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: validate,
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthAuthService interface
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	if payload.Issuer != "https://accounts.google.com" && payload.Issuer != "accounts.google.com" {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	email := stringClaim(payload.Claims, "email")
	if email == "" {
		return nil, errors.New("token has no email claim")
	}

	oauthUser := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		GivenName:     stringClaim(payload.Claims, "given_name"),
		FamilyName:    stringClaim(payload.Claims, "family_name"),
		Provider:      entity.ProviderTypeGoogle,
		EmailVerified: boolClaim(payload.Claims, "email_verified"),
	}

	s.logger.Debug("Google ID token verified",
		slog.String("subject", oauthUser.ID),
		slog.String("email", oauthUser.Email))

	return oauthUser, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}

func boolClaim(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
