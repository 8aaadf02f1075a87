package usecase

import (
	"context"
	"time"

	"aurelise/internal/domain/entity"

	"github.com/google/uuid"
)

// PlaceOrderInput defines the checkout form.
type PlaceOrderInput struct {
	DeliveryType         entity.DeliveryType
	DeliveryDate         time.Time
	DeliveryTime         string
	DeliveryAddress      *entity.DeliveryAddress
	Customer             entity.CustomerInfo
	SpecialInstructions  string
	AllergenAcknowledged bool
}

// CheckoutUsecase turns a cart into an order and serves the customer's order history.
type CheckoutUsecase interface {
	// PlaceOrder validates the form, prices the cart and writes the order while clearing the cart.
	PlaceOrder(ctx context.Context, owner entity.CartOwner, input *PlaceOrderInput) (*entity.Order, error)
	// ListOrders lists the account's orders newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	// PickupQR renders the collection QR code of an owned order as PNG.
	PickupQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
