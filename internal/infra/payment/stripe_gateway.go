// Package payment talks to the card payment processor.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"aurelise/config"
	"aurelise/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/fx"
)

// minorUnitFactor converts two-decimal currencies to their minor unit.
var minorUnitFactor = decimal.NewFromInt(100) //nolint:gochecknoglobals

// StripeGatewayParams holds dependencies for the Stripe gateway, injected by Fx
type StripeGatewayParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type stripeGateway struct {
	api           *client.API
	webhookSecret string
	logger        *slog.Logger
}

// NewStripeGateway creates the PaymentGateway backed by the Stripe API.
func NewStripeGateway(params StripeGatewayParams) (service.PaymentGateway, error) {
	cfg := params.Config.Stripe
	if cfg == nil || cfg.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}

	return newStripeGateway(client.New(cfg.SecretKey, nil), cfg.WebhookSecret, params.Logger), nil
}

func newStripeGateway(api *client.API, webhookSecret string, logger *slog.Logger) *stripeGateway {
	return &stripeGateway{
		api:           api,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// GetPaymentIntent retrieves an existing intent
func (g *stripeGateway) GetPaymentIntent(ctx context.Context, id string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.Get(id, params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to retrieve payment intent %s", id)
	}

	return toPaymentIntent(intent), nil
}

// FindOrCreateCustomer reuses the first customer registered with the email
func (g *stripeGateway) FindOrCreateCustomer(ctx context.Context, email, name string) (string, error) {
	listParams := &stripe.CustomerListParams{Email: stripe.String(email)}
	listParams.Context = ctx
	listParams.Limit = stripe.Int64(1)

	iter := g.api.Customers.List(listParams)
	if iter.Next() {
		return iter.Customer().ID, nil
	}
	if err := iter.Err(); err != nil {
		return "", errors.Wrap(err, "failed to look up customer")
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx

	customer, err := g.api.Customers.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create customer")
	}

	g.logger.Debug("Stripe customer created", slog.String("customer_id", customer.ID))

	return customer.ID, nil
}

// CreatePaymentIntent opens an intent with automatic payment methods
func (g *stripeGateway) CreatePaymentIntent(ctx context.Context, input service.CreatePaymentIntentInput) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ToMinorUnits(input.Amount)),
		Currency: stripe.String(strings.ToLower(input.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if input.CustomerID != "" {
		params.Customer = stripe.String(input.CustomerID)
	}
	if input.ReceiptEmail != "" {
		params.ReceiptEmail = stripe.String(input.ReceiptEmail)
	}
	if input.Description != "" {
		params.Description = stripe.String(input.Description)
	}
	if input.IdempotencyID != "" {
		params.SetIdempotencyKey(input.IdempotencyID)
	}
	for key, value := range input.Metadata {
		params.AddMetadata(key, value)
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create payment intent")
	}

	return toPaymentIntent(intent), nil
}

// CreateRefund refunds part or all of a captured intent
func (g *stripeGateway) CreateRefund(ctx context.Context, input service.CreateRefundInput) (*service.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(input.PaymentIntentID),
		Amount:        stripe.Int64(ToMinorUnits(input.Amount)),
	}
	params.Context = ctx
	if input.Reason != "" {
		params.Reason = stripe.String(input.Reason)
	}
	if input.IdempotencyID != "" {
		params.SetIdempotencyKey(input.IdempotencyID)
	}
	for key, value := range input.Metadata {
		params.AddMetadata(key, value)
	}

	refund, err := g.api.Refunds.New(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create refund")
	}

	return &service.Refund{ID: refund.ID, Status: string(refund.Status)}, nil
}

// ParseWebhookEvent verifies the Stripe-Signature header and extracts the intent id
func (g *stripeGateway) ParseWebhookEvent(payload []byte, signature string) (*service.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidWebhookSignature, err.Error())
	}

	paymentEvent := &service.PaymentEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data != nil && strings.HasPrefix(paymentEvent.Type, "payment_intent.") {
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			return nil, errors.Wrap(err, "failed to decode payment intent")
		}
		paymentEvent.PaymentIntentID = intent.ID
	}

	return paymentEvent, nil
}

// ToMinorUnits converts a two-decimal amount to pence/cents, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnitFactor).Round(0).IntPart()
}

func toPaymentIntent(intent *stripe.PaymentIntent) *service.PaymentIntent {
	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       service.PaymentIntentStatus(intent.Status),
	}
}
