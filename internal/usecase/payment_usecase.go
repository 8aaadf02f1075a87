package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateIntentInput identifies the order to pay and who is paying.
type CreateIntentInput struct {
	OrderID uuid.UUID

	// UserID is the signed-in account, nil for guests.
	UserID *uuid.UUID

	// Email must match the order's customer email when a guest pays.
	Email string
}

// CreateIntentOutput is what the client needs to confirm the payment.
type CreateIntentOutput struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

// RefundInput defines a full or partial refund. A nil amount refunds the remaining balance.
type RefundInput struct {
	OrderID     uuid.UUID
	Amount      *decimal.Decimal
	Reason      string
	ProcessedBy uuid.UUID
}

// RefundOutput describes the recorded refund.
type RefundOutput struct {
	RefundID      string          `json:"refund_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status"`
}

// PaymentUsecase bridges orders and the card payment processor.
type PaymentUsecase interface {
	// CreateIntent opens a payment intent for the order, or returns the one still awaiting confirmation.
	CreateIntent(ctx context.Context, input *CreateIntentInput) (*CreateIntentOutput, error)
	// HandleWebhook verifies and applies a processor notification.
	// Only signature failures are returned; processing failures are logged.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	Refund(ctx context.Context, input *RefundInput) (*RefundOutput, error)
}
