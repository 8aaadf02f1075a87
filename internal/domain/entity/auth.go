// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names a way of signing in.
type ProviderType string

const (
	// ProviderTypeEmail is email + password.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is Google Sign-In with an ID token.
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication represents a single credential linked to a user.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this credential.
	UserID         uuid.UUID    // The account this credential signs into.
	Provider       ProviderType // email or google.
	ProviderUserID string       // Email address, or Google's 'sub' claim.
	PasswordHash   string       // bcrypt hash, only for the email provider.
	CreatedAt      time.Time
}

// RefreshToken represents a long-lived session. Only the SHA-256 hash of the token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session is past its expiry at the given instant.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
