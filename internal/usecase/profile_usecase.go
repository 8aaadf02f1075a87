package usecase

import (
	"context"

	"aurelise/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the customer's own account data: profile, addresses and wishlist.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	// CreateAddress saves an address. A default address clears the default flag of the others.
	CreateAddress(ctx context.Context, userID uuid.UUID, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error

	GetWishlist(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// AddressInput defines a saved address.
type AddressInput struct {
	Street    string             `json:"street"`
	City      string             `json:"city"`
	County    string             `json:"county"`
	Postcode  string             `json:"postcode"`
	Country   string             `json:"country"`
	Type      entity.AddressType `json:"type"`
	IsDefault bool               `json:"is_default"`
}
