package impl

import (
	"context"
	"testing"
	"time"

	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
	mockRepo "aurelise/internal/mocks/repository"
	mockSvc "aurelise/internal/mocks/service"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixtures struct {
	service   usecase.PaymentUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	gateway   *mockSvc.MockPaymentGateway
	publisher *mockSvc.MockEventPublisher
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	fixtures := paymentServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		gateway:   mockSvc.NewMockPaymentGateway(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	srv := NewPaymentService(PaymentServiceParams{
		TxManager: fixtures.txManager,
		OrderRepo: fixtures.orderRepo,
		Gateway:   fixtures.gateway,
		Publisher: fixtures.publisher,
		Logger:    newDiscardLogger(),
	})
	srv.(*paymentService).now = func() time.Time { return time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC) }
	fixtures.service = srv

	return fixtures
}

func unpaidOrder(userID *uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:             uuid.New(),
		OrderNumber:    "AUR20260504-0007",
		UserID:         userID,
		Status:         entity.OrderStatusPending,
		PaymentStatus:  entity.PaymentStatusPending,
		Customer:       entity.CustomerInfo{FirstName: "Claire", LastName: "Dubois", Email: "claire@example.com"},
		Total:          decimal.RequireFromString("57.80"),
		RefundedAmount: decimal.Zero,
		Currency:       "GBP",
	}
}

func TestPaymentService_CreateIntent_New(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := unpaidOrder(&userID)

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().FindOrCreateCustomer(ctx, "claire@example.com", "Claire Dubois").Return("cus_123", nil)
	fx.gateway.EXPECT().
		CreatePaymentIntent(ctx, mock.MatchedBy(func(input service.CreatePaymentIntentInput) bool {
			return input.Amount.Equal(order.Total) &&
				input.Currency == "GBP" &&
				input.CustomerID == "cus_123" &&
				input.Description == "Order #AUR20260504-0007" &&
				input.Metadata["order_id"] == order.ID.String() &&
				input.Metadata["user_id"] == userID.String() &&
				input.IdempotencyID == "order-"+order.ID.String()+"-"
		})).
		Return(&service.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Status: service.IntentRequiresPaymentMethod}, nil)
	fx.orderRepo.EXPECT().SetPaymentIntentID(ctx, order.ID, "pi_1").Return(nil)

	output, err := fx.service.CreateIntent(ctx, &usecase.CreateIntentInput{OrderID: order.ID, UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", output.ClientSecret)
	assert.Equal(t, "pi_1", output.PaymentIntentID)
}

func TestPaymentService_CreateIntent_ReusesPendingIntent(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := unpaidOrder(&userID)
	order.PaymentIntentID = "pi_1"

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().
		GetPaymentIntent(ctx, "pi_1").
		Return(&service.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Status: service.IntentRequiresPaymentMethod}, nil)

	output, err := fx.service.CreateIntent(ctx, &usecase.CreateIntentInput{OrderID: order.ID, UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, "pi_1", output.PaymentIntentID)
}

func TestPaymentService_CreateIntent_ReplacesCanceledIntent(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := unpaidOrder(nil)
	order.PaymentIntentID = "pi_old"

	fx.orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)
	fx.gateway.EXPECT().GetPaymentIntent(ctx, "pi_old").Return(&service.PaymentIntent{ID: "pi_old", Status: service.IntentCanceled}, nil)
	fx.gateway.EXPECT().FindOrCreateCustomer(ctx, "claire@example.com", "Claire Dubois").Return("cus_123", nil)
	fx.gateway.EXPECT().
		CreatePaymentIntent(ctx, mock.MatchedBy(func(input service.CreatePaymentIntentInput) bool {
			return input.IdempotencyID == "order-"+order.ID.String()+"-pi_old" && input.Metadata["user_id"] == "guest"
		})).
		Return(&service.PaymentIntent{ID: "pi_new", ClientSecret: "pi_new_secret"}, nil)
	fx.orderRepo.EXPECT().SetPaymentIntentID(ctx, order.ID, "pi_new").Return(nil)

	output, err := fx.service.CreateIntent(ctx, &usecase.CreateIntentInput{OrderID: order.ID, Email: "Claire@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, "pi_new", output.PaymentIntentID)
}

func TestPaymentService_CreateIntent_Rejections(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		order   func() *entity.Order
		input   func(order *entity.Order) *usecase.CreateIntentInput
		setup   func(fx paymentServiceFixtures)
		wantErr error
	}{
		{
			name:  "another account",
			order: func() *entity.Order { return unpaidOrder(&ownerID) },
			input: func(order *entity.Order) *usecase.CreateIntentInput {
				other := uuid.New()
				return &usecase.CreateIntentInput{OrderID: order.ID, UserID: &other}
			},
			wantErr: domainerrors.ErrOrderNotFound,
		},
		{
			name:  "guest email mismatch",
			order: func() *entity.Order { return unpaidOrder(nil) },
			input: func(order *entity.Order) *usecase.CreateIntentInput {
				return &usecase.CreateIntentInput{OrderID: order.ID, Email: "someone@example.com"}
			},
			wantErr: domainerrors.ErrOrderNotFound,
		},
		{
			name: "already paid",
			order: func() *entity.Order {
				order := unpaidOrder(&ownerID)
				order.PaymentStatus = entity.PaymentStatusCompleted
				return order
			},
			input: func(order *entity.Order) *usecase.CreateIntentInput {
				return &usecase.CreateIntentInput{OrderID: order.ID, UserID: &ownerID}
			},
			wantErr: domainerrors.ErrOrderAlreadyPaid,
		},
		{
			name: "intent already succeeded",
			order: func() *entity.Order {
				order := unpaidOrder(&ownerID)
				order.PaymentIntentID = "pi_done"
				return order
			},
			input: func(order *entity.Order) *usecase.CreateIntentInput {
				return &usecase.CreateIntentInput{OrderID: order.ID, UserID: &ownerID}
			},
			setup: func(fx paymentServiceFixtures) {
				fx.gateway.EXPECT().GetPaymentIntent(mock.Anything, "pi_done").
					Return(&service.PaymentIntent{ID: "pi_done", Status: service.IntentSucceeded}, nil)
			},
			wantErr: domainerrors.ErrOrderAlreadyPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)
			order := tt.order()

			fx.orderRepo.EXPECT().FindOrderByID(mock.Anything, order.ID).Return(order, nil)
			if tt.setup != nil {
				tt.setup(fx)
			}

			output, err := fx.service.CreateIntent(context.Background(), tt.input(order))
			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentService_HandleWebhook_Succeeded(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := unpaidOrder(&userID)
	order.PaymentIntentID = "pi_1"
	confirmed := entity.OrderStatusConfirmed

	fx.gateway.EXPECT().
		ParseWebhookEvent([]byte("{}"), "t=1,v1=abc").
		Return(&service.PaymentEvent{ID: "evt_1", Type: service.EventPaymentIntentSucceeded, PaymentIntentID: "pi_1"}, nil)
	fx.orderRepo.EXPECT().
		ApplyPaymentTransition(ctx, repository.PaymentTransition{
			PaymentIntentID: "pi_1",
			From:            []entity.PaymentStatus{entity.PaymentStatusPending, entity.PaymentStatusFailed},
			PaymentStatus:   entity.PaymentStatusCompleted,
			Status:          &confirmed,
		}).
		Return(true, nil)

	paid := *order
	paid.Status = entity.OrderStatusConfirmed
	paid.PaymentStatus = entity.PaymentStatusCompleted
	fx.orderRepo.EXPECT().FindOrderByPaymentIntentID(ctx, "pi_1").Return(&paid, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == constants.EventOrderConfirmed &&
				event.OrderID == order.ID.String() &&
				event.UserID == userID.String() &&
				event.Status == "CONFIRMED"
		})).
		Return(nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, []byte("{}"), "t=1,v1=abc"))
}

func TestPaymentService_HandleWebhook_ReplayIsNoop(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.gateway.EXPECT().
		ParseWebhookEvent(mock.Anything, "sig").
		Return(&service.PaymentEvent{ID: "evt_1", Type: service.EventPaymentIntentSucceeded, PaymentIntentID: "pi_1"}, nil)
	fx.orderRepo.EXPECT().
		ApplyPaymentTransition(ctx, mock.AnythingOfType("repository.PaymentTransition")).
		Return(false, nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, []byte("{}"), "sig"))
}

func TestPaymentService_HandleWebhook_Failed(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.gateway.EXPECT().
		ParseWebhookEvent(mock.Anything, "sig").
		Return(&service.PaymentEvent{ID: "evt_2", Type: service.EventPaymentIntentFailed, PaymentIntentID: "pi_1"}, nil)
	fx.orderRepo.EXPECT().
		ApplyPaymentTransition(ctx, mock.MatchedBy(func(transition repository.PaymentTransition) bool {
			return transition.PaymentStatus == entity.PaymentStatusFailed && transition.Status == nil
		})).
		Return(true, nil)

	require.NoError(t, fx.service.HandleWebhook(ctx, []byte("{}"), "sig"))
}

func TestPaymentService_HandleWebhook_Signature(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		fx := createTestPaymentService(t)

		err := fx.service.HandleWebhook(context.Background(), []byte("{}"), "")
		assert.ErrorIs(t, err, domainerrors.ErrMissingSignature)
	})

	t.Run("invalid", func(t *testing.T) {
		fx := createTestPaymentService(t)

		fx.gateway.EXPECT().
			ParseWebhookEvent(mock.Anything, "forged").
			Return(nil, errors.Wrap(service.ErrInvalidWebhookSignature, "no valid signature"))

		err := fx.service.HandleWebhook(context.Background(), []byte("{}"), "forged")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSignature)
	})
}

func TestPaymentService_HandleWebhook_UnknownEventAcknowledged(t *testing.T) {
	fx := createTestPaymentService(t)

	fx.gateway.EXPECT().
		ParseWebhookEvent(mock.Anything, "sig").
		Return(&service.PaymentEvent{ID: "evt_3", Type: "charge.refunded"}, nil)

	assert.NoError(t, fx.service.HandleWebhook(context.Background(), []byte("{}"), "sig"))
}

func capturedOrder() *entity.Order {
	order := unpaidOrder(nil)
	order.Status = entity.OrderStatusConfirmed
	order.PaymentStatus = entity.PaymentStatusCompleted
	order.PaymentIntentID = "pi_1"

	return order
}

func TestPaymentService_Refund_Full(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	adminID := uuid.New()
	order := capturedOrder()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

		txOrderRepo.EXPECT().FindOrderForUpdate(ctx, order.ID).Return(order, nil)
		fx.gateway.EXPECT().
			CreateRefund(ctx, mock.MatchedBy(func(input service.CreateRefundInput) bool {
				return input.PaymentIntentID == "pi_1" &&
					input.Amount.Equal(decimal.RequireFromString("57.80")) &&
					input.Reason == "requested_by_customer" &&
					input.Metadata["processed_by"] == adminID.String() &&
					input.Metadata["reason_note"] == "Cake arrived damaged"
			})).
			Return(&service.Refund{ID: "re_1", Status: "succeeded"}, nil)
		txOrderRepo.EXPECT().
			RecordRefund(ctx, order.ID, decimal.RequireFromString("57.80"), entity.PaymentStatusRefunded).
			Return(nil)
	})
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == constants.EventOrderRefunded && event.Status == "CANCELLED" && event.PaymentStatus == "REFUNDED"
		})).
		Return(nil)

	output, err := fx.service.Refund(ctx, &usecase.RefundInput{OrderID: order.ID, Reason: "Cake arrived damaged", ProcessedBy: adminID})
	require.NoError(t, err)
	assert.Equal(t, "re_1", output.RefundID)
	assert.Equal(t, "57.80", output.Amount.StringFixed(2))
	assert.Equal(t, "REFUNDED", output.PaymentStatus)
}

func TestPaymentService_Refund_Partial(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := capturedOrder()
	amount := decimal.RequireFromString("10.00")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

		txOrderRepo.EXPECT().FindOrderForUpdate(ctx, order.ID).Return(order, nil)
		fx.gateway.EXPECT().
			CreateRefund(ctx, mock.MatchedBy(func(input service.CreateRefundInput) bool {
				return input.Amount.Equal(amount) && input.Reason == "duplicate"
			})).
			Return(&service.Refund{ID: "re_2"}, nil)
		txOrderRepo.EXPECT().RecordRefund(ctx, order.ID, amount, entity.PaymentStatusPartialRefund).Return(nil)
	})
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil)

	output, err := fx.service.Refund(ctx, &usecase.RefundInput{OrderID: order.ID, Amount: &amount, Reason: "duplicate"})
	require.NoError(t, err)
	assert.Equal(t, "PARTIAL_REFUND", output.PaymentStatus)
}

func TestPaymentService_Refund_RetryAfterFailedWriteReusesIdempotencyKey(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	order := capturedOrder()
	wantKey := "refund-" + order.ID.String() + "-0.00"

	var keys []string
	for attempt := range 2 {
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txOrderRepo := mockRepo.NewMockOrderRepository(t)
			factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

			txOrderRepo.EXPECT().FindOrderForUpdate(ctx, order.ID).Return(order, nil)
			fx.gateway.EXPECT().
				CreateRefund(ctx, mock.Anything).
				RunAndReturn(func(_ context.Context, input service.CreateRefundInput) (*service.Refund, error) {
					keys = append(keys, input.IdempotencyID)

					return &service.Refund{ID: "re_1", Status: "succeeded"}, nil
				}).
				Once()
			call := txOrderRepo.EXPECT().RecordRefund(ctx, order.ID, order.Total, entity.PaymentStatusRefunded)
			if attempt == 0 {
				call.Return(errors.New("connection reset"))
			} else {
				call.Return(nil)
			}
		})
	}
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Once()

	output, err := fx.service.Refund(ctx, &usecase.RefundInput{OrderID: order.ID})
	assert.Nil(t, output)
	assert.ErrorContains(t, err, "failed to record refund")

	output, err = fx.service.Refund(ctx, &usecase.RefundInput{OrderID: order.ID})
	require.NoError(t, err)
	assert.Equal(t, "re_1", output.RefundID)

	assert.Equal(t, []string{wantKey, wantKey}, keys)
}

func TestPaymentService_Refund_KeyAdvancesAfterRecordedRefund(t *testing.T) {
	first := capturedOrder()
	second := capturedOrder()
	second.ID = first.ID
	second.PaymentStatus = entity.PaymentStatusPartialRefund
	second.RefundedAmount = decimal.RequireFromString("10.00")

	assert.Equal(t, "refund-"+first.ID.String()+"-0.00", refundIdempotencyKey(first))
	assert.Equal(t, "refund-"+first.ID.String()+"-10.00", refundIdempotencyKey(second))
}

func TestPaymentService_Refund_Rejections(t *testing.T) {
	tooMuch := decimal.RequireFromString("60.00")

	tests := []struct {
		name    string
		order   func() *entity.Order
		amount  *decimal.Decimal
		wantErr error
	}{
		{
			name: "no payment handle",
			order: func() *entity.Order {
				order := capturedOrder()
				order.PaymentIntentID = ""
				return order
			},
			wantErr: domainerrors.ErrOrderOrPaymentNotFound,
		},
		{
			name: "payment never captured",
			order: func() *entity.Order {
				order := capturedOrder()
				order.PaymentStatus = entity.PaymentStatusPending
				return order
			},
			wantErr: domainerrors.ErrRefundAmountInvalid,
		},
		{
			name:    "more than the remaining balance",
			order:   capturedOrder,
			amount:  &tooMuch,
			wantErr: domainerrors.ErrRefundAmountInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)
			order := tt.order()

			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				txOrderRepo := mockRepo.NewMockOrderRepository(t)
				factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
				txOrderRepo.EXPECT().FindOrderForUpdate(mock.Anything, order.ID).Return(order, nil)
			})

			output, err := fx.service.Refund(context.Background(), &usecase.RefundInput{OrderID: order.ID, Amount: tt.amount})
			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPaymentService_Refund_UnknownOrder(t *testing.T) {
	fx := createTestPaymentService(t)

	orderID := uuid.New()
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txOrderRepo := mockRepo.NewMockOrderRepository(t)
		factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
		txOrderRepo.EXPECT().FindOrderForUpdate(mock.Anything, orderID).Return(nil, repository.ErrOrderNotFound)
	})

	_, err := fx.service.Refund(context.Background(), &usecase.RefundInput{OrderID: orderID})
	assert.ErrorIs(t, err, domainerrors.ErrOrderOrPaymentNotFound)
}
