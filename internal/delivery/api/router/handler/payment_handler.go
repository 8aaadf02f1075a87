package handler

import (
	"io"
	"log/slog"
	"net/http"

	"aurelise/internal/delivery/api/middleware"
	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/constants"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// maxWebhookBodySize bounds the raw webhook payload.
const maxWebhookBodySize = 64 << 10

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payment intents, processor webhooks and refunds.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreateIntentRequest selects the order to pay. Guests prove access with the order email.
type CreateIntentRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Email   string    `json:"email" validate:"omitempty,email"`
}

// RefundRequest refunds all or part of a captured payment.
type RefundRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Reason string           `json:"reason" validate:"omitempty,max=500"`
}

// CreateIntent opens or reuses the payment intent of an order.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req CreateIntentRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateIntentInput{
		OrderID: req.OrderID,
		Email:   req.Email,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.UserID = &userID
	}

	output, err := h.paymentUC.CreateIntent(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, output)
}

// StripeWebhook verifies and applies a processor notification. Once the
// signature is accepted the notification is always acknowledged.
func (h *PaymentHandler) StripeWebhook(c echo.Context) error {
	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBodySize+1))
	if err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "Unreadable body")
	}
	if len(payload) > maxWebhookBodySize {
		return response.HandleAppError(c, domainerrors.ErrPayloadTooLarge)
	}

	signature := c.Request().Header.Get(constants.HeaderStripeSignature)
	if err := h.paymentUC.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

// Refund refunds an order from the back office.
func (h *PaymentHandler) Refund(c echo.Context) error {
	adminID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	orderID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RefundRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.paymentUC.Refund(c.Request().Context(), &usecase.RefundInput{
		OrderID:     orderID,
		Amount:      req.Amount,
		Reason:      req.Reason,
		ProcessedBy: adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, output)
}
