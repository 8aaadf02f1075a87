package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in Claims.Type. Only access tokens authenticate API calls.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the storefront's JWT claims.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
	jwt.RegisteredClaims
}

// TokenService issues and verifies the access and refresh tokens of a session.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// GenerateAccessToken issues a new access token for an existing session.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken verifies signature and expiry with the secret matching the token type.
	ValidateToken(tokenString string) (*Claims, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
