package handler

import (
	"net/http"
	"strings"
	"testing"

	"aurelise/internal/domain/constants"
	domainerrors "aurelise/internal/domain/errors"
	mockUC "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentHandler(t *testing.T) (*PaymentHandler, *mockUC.MockPaymentUsecase) {
	paymentUC := mockUC.NewMockPaymentUsecase(t)

	return NewPaymentHandler(PaymentHandlerParams{PaymentUC: paymentUC, Logger: newDiscardLogger()}), paymentUC
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	orderID := uuid.New()

	t.Run("guest proves access with the order email", func(t *testing.T) {
		h, paymentUC := newPaymentHandler(t)
		c, rec := newContext(http.MethodPost, "/api/v1/payments/intent", `{"order_id":"`+orderID.String()+`","email":"claire@example.com"}`)

		paymentUC.EXPECT().
			CreateIntent(mock.Anything, &usecase.CreateIntentInput{OrderID: orderID, Email: "claire@example.com"}).
			Return(&usecase.CreateIntentOutput{ClientSecret: "pi_1_secret_2", PaymentIntentID: "pi_1"}, nil).
			Once()

		require.NoError(t, h.CreateIntent(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out usecase.CreateIntentOutput
		decodeData(t, rec, &out)
		assert.Equal(t, "pi_1_secret_2", out.ClientSecret)
		assert.Equal(t, "pi_1", out.PaymentIntentID)
	})

	t.Run("signed-in owner", func(t *testing.T) {
		h, paymentUC := newPaymentHandler(t)
		c, rec := newContext(http.MethodPost, "/api/v1/payments/intent", `{"order_id":"`+orderID.String()+`"}`)
		userID := signIn(c)

		paymentUC.EXPECT().
			CreateIntent(mock.Anything, &usecase.CreateIntentInput{OrderID: orderID, UserID: &userID}).
			Return(nil, domainerrors.ErrOrderAlreadyPaid).
			Once()

		require.NoError(t, h.CreateIntent(c))
		requireErrorCode(t, rec, http.StatusConflict, domainerrors.ErrOrderAlreadyPaid.ErrorCode())
	})
}

func TestPaymentHandler_StripeWebhook(t *testing.T) {
	payload := `{"id":"evt_1","type":"payment_intent.succeeded"}`

	t.Run("acknowledges a verified event", func(t *testing.T) {
		h, paymentUC := newPaymentHandler(t)
		c, rec := newContext(http.MethodPost, "/webhooks/stripe", payload)
		c.Request().Header.Set(constants.HeaderStripeSignature, "t=1,v1=abc")

		paymentUC.EXPECT().HandleWebhook(mock.Anything, []byte(payload), "t=1,v1=abc").Return(nil).Once()

		require.NoError(t, h.StripeWebhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"received":true}`, rec.Body.String())
	})

	tests := []struct {
		name string
		err  *domainerrors.BaseError
	}{
		{name: "missing signature", err: domainerrors.ErrMissingSignature},
		{name: "invalid signature", err: domainerrors.ErrInvalidSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, paymentUC := newPaymentHandler(t)
			c, rec := newContext(http.MethodPost, "/webhooks/stripe", payload)

			paymentUC.EXPECT().HandleWebhook(mock.Anything, []byte(payload), "").Return(tt.err).Once()

			require.NoError(t, h.StripeWebhook(c))
			requireErrorCode(t, rec, http.StatusBadRequest, tt.err.ErrorCode())
			assert.Equal(t, tt.err.Message(), decode(t, rec).Error.Message)
		})
	}
}

func TestPaymentHandler_StripeWebhook_BodySize(t *testing.T) {
	t.Run("payload at the limit is verified whole", func(t *testing.T) {
		h, paymentUC := newPaymentHandler(t)
		payload := strings.Repeat("a", maxWebhookBodySize)
		c, rec := newContext(http.MethodPost, "/webhooks/stripe", payload)
		c.Request().Header.Set(constants.HeaderStripeSignature, "t=1,v1=abc")

		paymentUC.EXPECT().
			HandleWebhook(mock.Anything, mock.MatchedBy(func(body []byte) bool { return len(body) == maxWebhookBodySize }), "t=1,v1=abc").
			Return(nil).
			Once()

		require.NoError(t, h.StripeWebhook(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("oversized payload is rejected before verification", func(t *testing.T) {
		h, _ := newPaymentHandler(t)
		c, rec := newContext(http.MethodPost, "/webhooks/stripe", strings.Repeat("a", maxWebhookBodySize+1))
		c.Request().Header.Set(constants.HeaderStripeSignature, "t=1,v1=abc")

		require.NoError(t, h.StripeWebhook(c))
		requireErrorCode(t, rec, http.StatusRequestEntityTooLarge, domainerrors.ErrPayloadTooLarge.ErrorCode())
	})
}

func TestPaymentHandler_Refund(t *testing.T) {
	h, paymentUC := newPaymentHandler(t)
	orderID := uuid.New()
	c, rec := newContext(http.MethodPost, "/admin/orders/"+orderID.String()+"/refund", `{"amount":"10.00","reason":"burnt crust"}`)
	withParams(c, "id", orderID.String())
	adminID := signIn(c)

	paymentUC.EXPECT().
		Refund(mock.Anything, mock.MatchedBy(func(input *usecase.RefundInput) bool {
			return input.OrderID == orderID &&
				input.ProcessedBy == adminID &&
				input.Amount != nil && input.Amount.Equal(decimal.RequireFromString("10")) &&
				input.Reason == "burnt crust"
		})).
		Return(&usecase.RefundOutput{RefundID: "re_1", Amount: decimal.RequireFromString("10.00"), PaymentStatus: "PARTIAL_REFUND"}, nil).
		Once()

	require.NoError(t, h.Refund(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.RefundOutput
	decodeData(t, rec, &out)
	assert.Equal(t, "re_1", out.RefundID)
	assert.Equal(t, "PARTIAL_REFUND", out.PaymentStatus)
}

func TestPaymentHandler_Refund_FullWhenNoAmount(t *testing.T) {
	h, paymentUC := newPaymentHandler(t)
	orderID := uuid.New()
	c, rec := newContext(http.MethodPost, "/admin/orders/"+orderID.String()+"/refund", `{}`)
	withParams(c, "id", orderID.String())
	signIn(c)

	paymentUC.EXPECT().
		Refund(mock.Anything, mock.MatchedBy(func(input *usecase.RefundInput) bool { return input.Amount == nil })).
		Return(nil, domainerrors.ErrOrderOrPaymentNotFound).
		Once()

	require.NoError(t, h.Refund(c))
	requireErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrOrderOrPaymentNotFound.ErrorCode())
}
