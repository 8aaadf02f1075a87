package service

import (
	"context"

	"aurelise/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidWebhookSignature is returned when a webhook payload fails verification.
var ErrInvalidWebhookSignature = errors.New("invalid webhook signature")

// PaymentIntentStatus mirrors the processor's intent lifecycle.
type PaymentIntentStatus string

const (
	IntentRequiresPaymentMethod PaymentIntentStatus = "requires_payment_method"
	IntentRequiresConfirmation  PaymentIntentStatus = "requires_confirmation"
	IntentRequiresAction        PaymentIntentStatus = "requires_action"
	IntentProcessing            PaymentIntentStatus = "processing"
	IntentSucceeded             PaymentIntentStatus = "succeeded"
	IntentCanceled              PaymentIntentStatus = "canceled"
)

// IsReusable reports whether an existing intent can still be confirmed by the client.
func (s PaymentIntentStatus) IsReusable() bool {
	switch s {
	case IntentRequiresPaymentMethod, IntentRequiresConfirmation, IntentRequiresAction, IntentProcessing:
		return true
	default:
		return false
	}
}

// Webhook event types the storefront reacts to.
const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"
	EventPaymentIntentCanceled  = "payment_intent.canceled"
)

// PaymentIntent is the processor-side payment attempt.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       PaymentIntentStatus
}

// CreatePaymentIntentInput carries everything needed to open a payment intent.
type CreatePaymentIntentInput struct {
	Amount        decimal.Decimal
	Currency      string
	CustomerID    string
	ReceiptEmail  string
	Description   string
	Metadata      map[string]string
	IdempotencyID string
}

// CreateRefundInput describes a full or partial refund.
type CreateRefundInput struct {
	PaymentIntentID string
	Amount          decimal.Decimal
	Reason          string
	Metadata        map[string]string
	IdempotencyID   string
}

// Refund is the processor's refund record.
type Refund struct {
	ID     string
	Status string
}

// PaymentEvent is a verified webhook notification.
type PaymentEvent struct {
	ID              string
	Type            string
	PaymentIntentID string
}

// PaymentGateway abstracts the card payment processor.
type PaymentGateway interface {
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)

	// FindOrCreateCustomer returns the processor customer for the email, creating it if needed.
	FindOrCreateCustomer(ctx context.Context, email, name string) (string, error)

	CreatePaymentIntent(ctx context.Context, input CreatePaymentIntentInput) (*PaymentIntent, error)

	CreateRefund(ctx context.Context, input CreateRefundInput) (*Refund, error)

	// ParseWebhookEvent verifies the signature header and decodes the event.
	ParseWebhookEvent(payload []byte, signature string) (*PaymentEvent, error)
}
