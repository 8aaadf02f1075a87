// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"aurelise/internal/domain/entity"
	"aurelise/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an account with the same email exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the standard operations for user and profile persistence.
type UserRepository interface {
	// FindByID retrieves a user with its profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user with its profile by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user together with its profile.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile writes the editable profile fields.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error

	// UpdateRole changes the role stored on the profile.
	UpdateRole(ctx context.Context, userID uuid.UUID, role entity.Role) error

	// FindRole returns the stored role of a user.
	FindRole(ctx context.Context, userID uuid.UUID) (entity.Role, error)

	// ListCustomers returns customer profiles with their order counts.
	ListCustomers(ctx context.Context) ([]*entity.CustomerSummary, error)
}
