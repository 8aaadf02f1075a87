package service

import (
	"context"

	"aurelise/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (Google's 'sub' claim)
	Email         string              // User's email address
	GivenName     string              // First name
	FamilyName    string              // Last name
	Provider      entity.ProviderType // The OAuth provider
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthAuthService verifies ID tokens sent by clients after a social sign-in.
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}
