package payment

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"aurelise/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func newTestGateway(t *testing.T, handler http.HandlerFunc) *stripeGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(server.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	api := client.New("sk_test_123", &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return newStripeGateway(api, testWebhookSecret, slog.Default())
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"57.80", 5780},
		{"0.01", 1},
		{"10", 1000},
		{"8.805", 881},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, ToMinorUnits(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	var form url.Values
	var idempotencyKey string
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		idempotencyKey = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc","status":"requires_payment_method"}`))
	})

	intent, err := gateway.CreatePaymentIntent(context.Background(), service.CreatePaymentIntentInput{
		Amount:        decimal.RequireFromString("57.80"),
		Currency:      "GBP",
		CustomerID:    "cus_1",
		ReceiptEmail:  "guest@example.com",
		Description:   "Order #AUR-1",
		Metadata:      map[string]string{"order_id": "o-1", "user_id": "guest"},
		IdempotencyID: "order-o-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret_abc", intent.ClientSecret)
	assert.Equal(t, service.IntentRequiresPaymentMethod, intent.Status)

	assert.Equal(t, "5780", form.Get("amount"))
	assert.Equal(t, "gbp", form.Get("currency"))
	assert.Equal(t, "cus_1", form.Get("customer"))
	assert.Equal(t, "true", form.Get("automatic_payment_methods[enabled]"))
	assert.Equal(t, "o-1", form.Get("metadata[order_id]"))
	assert.Equal(t, "order-o-1", idempotencyKey)
}

func TestStripeGateway_CreateRefund(t *testing.T) {
	var form url.Values
	var idempotencyKey string
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/refunds", r.URL.Path)
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		idempotencyKey = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"re_1","object":"refund","status":"succeeded"}`))
	})

	refund, err := gateway.CreateRefund(context.Background(), service.CreateRefundInput{
		PaymentIntentID: "pi_123",
		Amount:          decimal.RequireFromString("20.00"),
		Reason:          "requested_by_customer",
		IdempotencyID:   "refund-o-1-0.00",
	})
	require.NoError(t, err)

	assert.Equal(t, "re_1", refund.ID)
	assert.Equal(t, "succeeded", refund.Status)
	assert.Equal(t, "2000", form.Get("amount"))
	assert.Equal(t, "pi_123", form.Get("payment_intent"))
	assert.Equal(t, "refund-o-1-0.00", idempotencyKey)
}

func TestStripeGateway_FindOrCreateCustomer_Existing(t *testing.T) {
	gateway := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "amelie@example.com", r.URL.Query().Get("email"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","url":"/v1/customers","has_more":false,"data":[{"id":"cus_existing","object":"customer"}]}`))
	})

	customerID, err := gateway.FindOrCreateCustomer(context.Background(), "amelie@example.com", "Amelie Poulain")
	require.NoError(t, err)
	assert.Equal(t, "cus_existing", customerID)
}

func TestStripeGateway_ParseWebhookEvent(t *testing.T) {
	gateway := newStripeGateway(nil, testWebhookSecret, slog.Default())
	payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123","object":"payment_intent","status":"succeeded"}}}`)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	event, err := gateway.ParseWebhookEvent(signed.Payload, signed.Header)
	require.NoError(t, err)
	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, service.EventPaymentIntentSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.PaymentIntentID)
}

func TestStripeGateway_ParseWebhookEvent_BadSignature(t *testing.T) {
	gateway := newStripeGateway(nil, testWebhookSecret, slog.Default())
	payload := []byte(`{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    "whsec_someone_else",
		Timestamp: time.Now(),
	})

	_, err := gateway.ParseWebhookEvent(signed.Payload, signed.Header)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidWebhookSignature)
}
