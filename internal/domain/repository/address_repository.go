package repository

import (
	"context"

	"aurelise/internal/domain/entity"
	"aurelise/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for saved customer addresses.
type AddressRepository interface {
	CreateAddress(ctx context.Context, address *entity.Address) error

	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUser lists a user's addresses, default first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	UpdateAddress(ctx context.Context, address *entity.Address) error

	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// ClearDefault unsets is_default on every address of the user except keepID.
	ClearDefault(ctx context.Context, userID, keepID uuid.UUID) error
}
