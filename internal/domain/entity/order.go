// Package entity contains the core business objects of the storefront.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// orderTransitions lists the allowed next states when transitions are enforced.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: nil,
	OrderStatusCancelled: nil,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether next is adjacent to s in the fulfilment sequence.
// Writing the current state again is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusCompleted     PaymentStatus = "COMPLETED"
	PaymentStatusFailed        PaymentStatus = "FAILED"
	PaymentStatusRefunded      PaymentStatus = "REFUNDED"
	PaymentStatusPartialRefund PaymentStatus = "PARTIAL_REFUND"
)

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed,
		PaymentStatusRefunded, PaymentStatusPartialRefund:
		return true
	default:
		return false
	}
}

// DeliveryType is how the customer receives the order.
type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "PICKUP"
	DeliveryTypeDelivery DeliveryType = "DELIVERY"
)

// IsValid checks if the DeliveryType is a valid value.
func (t DeliveryType) IsValid() bool {
	return t == DeliveryTypePickup || t == DeliveryTypeDelivery
}

// CustomerInfo is the contact snapshot stored on an order.
type CustomerInfo struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DeliveryAddress is the address snapshot stored on a delivery order.
type DeliveryAddress struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	County   string `json:"county,omitempty"`
	Postcode string `json:"postcode"`
	Country  string `json:"country,omitempty"`
}

// Order is a purchase record. Totals are frozen at creation.
type Order struct {
	ID                   uuid.UUID        `json:"id"`
	OrderNumber          string           `json:"order_number"`
	UserID               *uuid.UUID       `json:"user_id,omitempty"`
	Status               OrderStatus      `json:"status"`
	PaymentStatus        PaymentStatus    `json:"payment_status"`
	DeliveryType         DeliveryType     `json:"delivery_type"`
	DeliveryDate         time.Time        `json:"delivery_date"`
	DeliveryTime         string           `json:"delivery_time,omitempty"`
	DeliveryAddress      *DeliveryAddress `json:"delivery_address,omitempty"`
	Customer             CustomerInfo     `json:"customer"`
	SpecialInstructions  string           `json:"special_instructions,omitempty"`
	AllergenAcknowledged bool             `json:"allergen_acknowledged"`
	Subtotal             decimal.Decimal  `json:"subtotal"`
	DeliveryFee          decimal.Decimal  `json:"delivery_fee"`
	Tax                  decimal.Decimal  `json:"tax"`
	Total                decimal.Decimal  `json:"total"`
	RefundedAmount       decimal.Decimal  `json:"refunded_amount"`
	Currency             string           `json:"currency"`
	PaymentIntentID      string           `json:"payment_intent_id,omitempty"`
	Items                []*OrderItem     `json:"items,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// OrderItem is a line frozen at order time; the price is copied, not linked.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// HasPaymentHandle reports whether a payment intent was ever created for the order.
func (o *Order) HasPaymentHandle() bool {
	return o.PaymentIntentID != ""
}

// RefundableAmount is what is left to refund.
func (o *Order) RefundableAmount() decimal.Decimal {
	return o.Total.Sub(o.RefundedAmount)
}

// IsOwnedBy reports whether the order belongs to the given account.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID != nil && *o.UserID == userID
}

// OrderFilter narrows the back-office order listing.
type OrderFilter struct {
	Status       OrderStatus
	DeliveryDate *time.Time
	Page         int
	Limit        int
}

// OrderTotals is the price breakdown of a checkout.
type OrderTotals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}
