// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"aurelise/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a customer account.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string

	// CartSessionID is the guest cart to fold into the new account, if any.
	CartSessionID string
}

// LoginInput defines the data required for a customer to sign in.
type LoginInput struct {
	Email         string
	Password      string
	CartSessionID string
}

// GoogleLoginInput carries a Google ID token obtained by the client.
type GoogleLoginInput struct {
	IDToken       string
	CartSessionID string
}

// --- Output DTOs ---

// AuthOutput returns the issued tokens and the signed-in account.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshOutput returns a new access token for an existing session.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines account sign-up and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (*AuthOutput, error)
	RefreshToken(ctx context.Context, refreshToken string) (*RefreshOutput, error)
	Logout(ctx context.Context, refreshToken string) error
}
