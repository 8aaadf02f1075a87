package usecase

import (
	"context"

	"aurelise/internal/domain/entity"

	"github.com/google/uuid"
)

// AddCartItemInput selects a product size to put in the cart.
type AddCartItemInput struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int
}

// CartUsecase defines the cart of an account or a guest session.
// Every mutation returns the cart reloaded from the primary database.
type CartUsecase interface {
	// NewSession issues a fresh guest cart session token.
	NewSession(ctx context.Context) (string, error)
	// GetCart returns the owner's cart, or an empty cart when none exists yet.
	GetCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)
	AddItem(ctx context.Context, owner entity.CartOwner, input AddCartItemInput) (*entity.Cart, error)
	// UpdateItem overwrites the quantity of a line. A quantity of zero or less removes it.
	UpdateItem(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveItem(ctx context.Context, owner entity.CartOwner, itemID uuid.UUID) (*entity.Cart, error)
	ClearCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)
	// MergeCarts moves the guest session cart into the account cart, summing quantities.
	MergeCarts(ctx context.Context, userID uuid.UUID, sessionID string) (*entity.Cart, error)
}
