package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	refundReasonRequestedByCustomer = "requested_by_customer"
	guestMetadataValue              = "guest"
)

var refundReasons = map[string]bool{
	"duplicate":                     true,
	"fraudulent":                    true,
	refundReasonRequestedByCustomer: true,
}

type paymentService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (s *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// CreateIntent opens a payment intent for the order or returns the pending one.
func (s *paymentService) CreateIntent(ctx context.Context, input *usecase.CreateIntentInput) (*usecase.CreateIntentOutput, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, input.OrderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if !canPay(order, input) {
		return nil, domainerrors.ErrOrderNotFound
	}

	switch order.PaymentStatus {
	case entity.PaymentStatusCompleted, entity.PaymentStatusRefunded, entity.PaymentStatusPartialRefund:
		return nil, domainerrors.ErrOrderAlreadyPaid
	}

	if order.HasPaymentHandle() {
		existing, err := s.gateway.GetPaymentIntent(ctx, order.PaymentIntentID)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPaymentProviderFailed, err.Error())
		}
		if existing.Status == service.IntentSucceeded {
			return nil, domainerrors.ErrOrderAlreadyPaid
		}
		if existing.Status.IsReusable() {
			s.log(ctx).Debug("Reusing payment intent", slog.String("paymentIntentID", existing.ID))

			return &usecase.CreateIntentOutput{ClientSecret: existing.ClientSecret, PaymentIntentID: existing.ID}, nil
		}
	}

	customerID, err := s.gateway.FindOrCreateCustomer(ctx, order.Customer.Email, strings.TrimSpace(order.Customer.FirstName+" "+order.Customer.LastName))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPaymentProviderFailed, err.Error())
	}

	userMeta := guestMetadataValue
	if order.UserID != nil {
		userMeta = order.UserID.String()
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, service.CreatePaymentIntentInput{
		Amount:       order.Total,
		Currency:     order.Currency,
		CustomerID:   customerID,
		ReceiptEmail: order.Customer.Email,
		Description:  "Order #" + order.OrderNumber,
		Metadata: map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"user_id":      userMeta,
		},
		// A replaced intent gets a new key so the processor does not return the stale one.
		IdempotencyID: "order-" + order.ID.String() + "-" + order.PaymentIntentID,
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPaymentProviderFailed, err.Error())
	}

	if err := s.orderRepo.SetPaymentIntentID(ctx, order.ID, intent.ID); err != nil {
		return nil, errors.Wrap(err, "failed to store payment intent")
	}

	s.log(ctx).Info("Payment intent created",
		slog.Any("orderID", order.ID),
		slog.String("paymentIntentID", intent.ID),
	)

	return &usecase.CreateIntentOutput{ClientSecret: intent.ClientSecret, PaymentIntentID: intent.ID}, nil
}

// canPay checks that an account order is paid by its owner and a guest order by its customer email.
func canPay(order *entity.Order, input *usecase.CreateIntentInput) bool {
	if order.UserID != nil {
		return input.UserID != nil && *input.UserID == *order.UserID
	}

	return input.Email != "" && strings.EqualFold(strings.TrimSpace(input.Email), order.Customer.Email)
}

// HandleWebhook verifies a processor notification and applies it.
func (s *paymentService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if signature == "" {
		return domainerrors.ErrMissingSignature
	}

	event, err := s.gateway.ParseWebhookEvent(payload, signature)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWebhookSignature) {
			s.log(ctx).Warn("Rejected webhook with invalid signature", slog.Any("error", err))

			return domainerrors.ErrInvalidSignature
		}
		s.log(ctx).Error("Failed to decode webhook event", slog.Any("error", err))

		return nil
	}

	if err := s.applyEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to process webhook event",
			slog.String("eventID", event.ID),
			slog.String("type", event.Type),
			slog.Any("error", err),
		)
	}

	return nil
}

func (s *paymentService) applyEvent(ctx context.Context, event *service.PaymentEvent) error {
	var (
		transition repository.PaymentTransition
		eventType  string
	)

	switch event.Type {
	case service.EventPaymentIntentSucceeded:
		confirmed := entity.OrderStatusConfirmed
		transition = repository.PaymentTransition{
			From:          []entity.PaymentStatus{entity.PaymentStatusPending, entity.PaymentStatusFailed},
			PaymentStatus: entity.PaymentStatusCompleted,
			Status:        &confirmed,
		}
		eventType = constants.EventOrderConfirmed
	case service.EventPaymentIntentFailed:
		transition = repository.PaymentTransition{
			From:          []entity.PaymentStatus{entity.PaymentStatusPending},
			PaymentStatus: entity.PaymentStatusFailed,
		}
	case service.EventPaymentIntentCanceled:
		cancelled := entity.OrderStatusCancelled
		transition = repository.PaymentTransition{
			From:          []entity.PaymentStatus{entity.PaymentStatusPending, entity.PaymentStatusFailed},
			PaymentStatus: entity.PaymentStatusFailed,
			Status:        &cancelled,
		}
		eventType = constants.EventOrderStatusChanged
	default:
		s.log(ctx).Info("Ignoring unhandled webhook event", slog.String("type", event.Type), slog.String("eventID", event.ID))

		return nil
	}

	if event.PaymentIntentID == "" {
		return errors.Errorf("event %s carries no payment intent", event.ID)
	}
	transition.PaymentIntentID = event.PaymentIntentID

	changed, err := s.orderRepo.ApplyPaymentTransition(ctx, transition)
	if err != nil {
		return errors.Wrap(err, "failed to apply payment transition")
	}
	if !changed {
		s.log(ctx).Info("Webhook event already applied or no matching order",
			slog.String("type", event.Type),
			slog.String("paymentIntentID", event.PaymentIntentID),
		)

		return nil
	}

	s.log(ctx).Info("Payment state updated",
		slog.String("type", event.Type),
		slog.String("paymentIntentID", event.PaymentIntentID),
		slog.String("paymentStatus", string(transition.PaymentStatus)),
	)

	if eventType == "" {
		return nil
	}

	order, err := s.orderRepo.FindOrderByPaymentIntentID(ctx, event.PaymentIntentID)
	if err != nil {
		return errors.Wrap(err, "failed to reload order for event")
	}
	publishOrderEvent(ctx, s.publisher, s.log(ctx), newOrderEvent(ctx, eventType, order, s.now()))

	return nil
}

// Refund refunds part or all of the captured payment and cancels the order.
func (s *paymentService) Refund(ctx context.Context, input *usecase.RefundInput) (*usecase.RefundOutput, error) {
	var (
		order         *entity.Order
		refund        *service.Refund
		amount        decimal.Decimal
		paymentStatus entity.PaymentStatus
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = orderRepo.FindOrderForUpdate(ctx, input.OrderID)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderOrPaymentNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock order")
		}
		if !order.HasPaymentHandle() {
			return domainerrors.ErrOrderOrPaymentNotFound
		}
		if order.PaymentStatus != entity.PaymentStatusCompleted && order.PaymentStatus != entity.PaymentStatusPartialRefund {
			return domainerrors.ErrRefundAmountInvalid.WithDetails("order has no captured payment")
		}

		remaining := order.RefundableAmount()
		amount = remaining
		if input.Amount != nil {
			amount = input.Amount.Round(2)
		}
		if !amount.IsPositive() || amount.GreaterThan(remaining) {
			return domainerrors.ErrRefundAmountInvalid.WithDetails("refundable balance is " + remaining.StringFixed(2))
		}

		reason := strings.TrimSpace(input.Reason)
		metadata := map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"processed_by": input.ProcessedBy.String(),
		}
		if !refundReasons[reason] {
			if reason != "" {
				metadata["reason_note"] = reason
			}
			reason = refundReasonRequestedByCustomer
		}

		// A retry after a failed local write replays the same Stripe refund.
		refund, err = s.gateway.CreateRefund(ctx, service.CreateRefundInput{
			PaymentIntentID: order.PaymentIntentID,
			Amount:          amount,
			Reason:          reason,
			Metadata:        metadata,
			IdempotencyID:   refundIdempotencyKey(order),
		})
		if err != nil {
			return errors.Wrap(domainerrors.ErrPaymentProviderFailed, err.Error())
		}

		paymentStatus = entity.PaymentStatusRefunded
		if order.RefundedAmount.Add(amount).LessThan(order.Total) {
			paymentStatus = entity.PaymentStatusPartialRefund
		}

		if err := orderRepo.RecordRefund(ctx, order.ID, amount, paymentStatus); err != nil {
			return errors.Wrap(err, "failed to record refund")
		}

		return nil
	})
	if err != nil {
		if refund != nil {
			s.log(ctx).Error("Refund issued but not recorded",
				slog.Any("orderID", input.OrderID),
				slog.String("refundID", refund.ID),
				slog.String("amount", amount.StringFixed(2)),
				slog.Any("error", err),
			)
		}

		return nil, errors.Wrap(err, "failed to execute refund transaction")
	}

	s.log(ctx).Info("Refund processed",
		slog.Any("orderID", order.ID),
		slog.String("refundID", refund.ID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("paymentStatus", string(paymentStatus)),
	)

	order.Status = entity.OrderStatusCancelled
	order.PaymentStatus = paymentStatus
	order.RefundedAmount = order.RefundedAmount.Add(amount)
	publishOrderEvent(ctx, s.publisher, s.log(ctx), newOrderEvent(ctx, constants.EventOrderRefunded, order, s.now()))

	return &usecase.RefundOutput{
		RefundID:      refund.ID,
		Amount:        amount,
		PaymentStatus: string(paymentStatus),
	}, nil
}

// refundIdempotencyKey is stable until a refund is recorded against the order.
func refundIdempotencyKey(order *entity.Order) string {
	return "refund-" + order.ID.String() + "-" + order.RefundedAmount.StringFixed(2)
}
