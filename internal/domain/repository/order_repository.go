package repository

import (
	"context"
	"time"

	"aurelise/internal/domain/entity"
	"aurelise/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// PaymentTransition is a conditional payment-state write keyed by payment intent.
// The row is only written while its payment status is one of From.
type PaymentTransition struct {
	PaymentIntentID string
	From            []entity.PaymentStatus
	PaymentStatus   entity.PaymentStatus
	Status          *entity.OrderStatus
}

// OrderRepository defines persistence for orders and their items.
type OrderRepository interface {
	// CreateOrder persists the order with its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID loads an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderForUpdate loads an order and locks its row until the surrounding transaction ends.
	FindOrderForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByPaymentIntentID loads the order bound to a payment intent.
	FindOrderByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Order, error)

	// FindOrdersByUser lists an account's orders newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ListOrders returns one page of orders newest first and the total count.
	ListOrders(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int64, error)

	SetPaymentIntentID(ctx context.Context, id uuid.UUID, paymentIntentID string) error

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// ApplyPaymentTransition performs the conditional write and reports whether a row changed.
	ApplyPaymentTransition(ctx context.Context, transition PaymentTransition) (bool, error)

	// RecordRefund adds amount to refunded_amount, sets the payment status and cancels the order.
	RecordRefund(ctx context.Context, id uuid.UUID, amount decimal.Decimal, paymentStatus entity.PaymentStatus) error

	// SummarizeSince counts orders created at or after since and sums the total of paid ones.
	SummarizeSince(ctx context.Context, since time.Time) (int64, decimal.Decimal, error)

	CountByStatus(ctx context.Context, status entity.OrderStatus) (int64, error)

	// TopProducts ranks products by quantity sold.
	TopProducts(ctx context.Context, limit int) ([]*entity.PopularProduct, error)

	RecentOrders(ctx context.Context, limit int) ([]*entity.Order, error)

	// FindOrdersDueOn lists orders whose delivery date falls on day's calendar date, in one of statuses.
	FindOrdersDueOn(ctx context.Context, day time.Time, statuses []entity.OrderStatus) ([]*entity.Order, error)
}
