// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"aurelise/config"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := defaultAccessTTL, defaultRefreshTTL
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.GenerateAccessToken(userID, roles)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, nil, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken creates a short-lived access token.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, error) {
	return s.generateToken(userID, roles, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
}

// ValidateToken verifies a token signed with either secret and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	unverified, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}

	secret := s.accessSecret
	if mapClaims, ok := unverified.Claims.(jwt.MapClaims); ok && mapClaims["type"] == service.TokenTypeRefresh {
		secret = s.refreshSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	return toClaims(token)
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) generateToken(userID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"jti":  uuid.NewString(),
		"type": tokenType,
	}
	// Roles travel on access tokens only; refresh tokens identify the session.
	if roles != nil {
		claims["roles"] = roles
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func toClaims(token *jwt.Token) (*service.Claims, error) {
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}

	claims := &service.Claims{UserID: userID}
	claims.Subject = sub
	if tokenType, ok := mapClaims["type"].(string); ok {
		claims.Type = tokenType
	}
	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, role := range rawRoles {
			if r, ok := role.(string); ok {
				claims.Roles = append(claims.Roles, r)
			}
		}
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp
	}

	return claims, nil
}
