package repository

import (
	"context"

	"aurelise/internal/domain/entity"
	"aurelise/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for cart persistence.
var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrCartExists is returned when the owner already has a cart.
	ErrCartExists = errors.New("cart already exists")
)

// CartRepository defines persistence for shopping carts.
type CartRepository interface {
	// FindCartByOwner loads the cart of a user or guest session with its items.
	FindCartByOwner(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)

	// FindCartByID loads a cart with its items from the primary database.
	FindCartByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// CreateCart persists an empty cart for the owner. It returns
	// ErrCartExists when a concurrent request created one first.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// UpsertItem inserts a line or atomically adds quantity to the existing (cart, product, size) line.
	// The stored unit price is replaced with unitPrice.
	UpsertItem(ctx context.Context, cartID, productID uuid.UUID, size string, quantity int, unitPrice decimal.Decimal) error

	// FindItem loads a line scoped to its cart.
	FindItem(ctx context.Context, cartID, itemID uuid.UUID) (*entity.CartItem, error)

	UpdateItemQuantity(ctx context.Context, itemID uuid.UUID, quantity int) error

	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// ClearItems removes every line of the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error

	DeleteCart(ctx context.Context, cartID uuid.UUID) error
}
