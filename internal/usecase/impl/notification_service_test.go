package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
	mockRepo "aurelise/internal/mocks/repository"
	mockSvc "aurelise/internal/mocks/service"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.OrderNotificationUsecase,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockNotificationService,
) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewNotificationService(NotificationServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          logger,
	})

	return svc, deviceRepo, notificationSvc
}

func orderEventFor(userID uuid.UUID, eventType string, status entity.OrderStatus) *service.OrderEvent {
	return &service.OrderEvent{
		Type:          eventType,
		OrderID:       uuid.New().String(),
		OrderNumber:   "AUR20261015-0001",
		UserID:        userID.String(),
		Status:        status.String(),
		PaymentStatus: string(entity.PaymentStatusCompleted),
	}
}

func TestNotificationService_HandleOrderEvent_Confirmed(t *testing.T) {
	svc, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := orderEventFor(userID, constants.EventOrderConfirmed, entity.OrderStatusConfirmed)

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-1", IsActive: true},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-2", IsActive: true},
		}, nil)

	notificationSvc.EXPECT().
		SendBatch(ctx, []string{"token-1", "token-2"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == "Order #AUR20261015-0001 update" &&
				msg.Body == "Your order has been confirmed and we'll begin preparing your treats!" &&
				msg.Data["type"] == constants.EventOrderConfirmed &&
				msg.Data["order_id"] == event.OrderID &&
				msg.Data["order_number"] == event.OrderNumber &&
				msg.Data["status"] == "CONFIRMED"
		})).
		Return(&service.BatchResult{Sent: 2}, nil)

	result, err := svc.HandleOrderEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 0, result.InvalidTokens)
}

func TestNotificationService_HandleOrderEvent_StatusMessages(t *testing.T) {
	tests := []struct {
		status   entity.OrderStatus
		contains string
	}{
		{entity.OrderStatusPreparing, "now preparing your order"},
		{entity.OrderStatusReady, "Please collect it"},
		{entity.OrderStatusCompleted, "enjoyed every bite"},
		{entity.OrderStatusCancelled, "has been cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			svc, deviceRepo, notificationSvc := createTestNotificationService(t)

			ctx := context.Background()
			userID := uuid.New()

			deviceRepo.EXPECT().
				FindActiveDevicesByUser(ctx, userID).
				Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token"}}, nil)

			notificationSvc.EXPECT().
				SendBatch(ctx, []string{"token"}, mock.MatchedBy(func(msg service.PushMessage) bool {
					return strings.Contains(msg.Body, tt.contains)
				})).
				Return(&service.BatchResult{Sent: 1}, nil)

			result, err := svc.HandleOrderEvent(ctx, orderEventFor(userID, constants.EventOrderStatusChanged, tt.status))
			require.NoError(t, err)
			assert.Equal(t, 1, result.Sent)
		})
	}
}

func TestNotificationService_HandleOrderEvent_Refunded(t *testing.T) {
	svc, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token"}}, nil)

	notificationSvc.EXPECT().
		SendBatch(ctx, []string{"token"}, mock.MatchedBy(func(msg service.PushMessage) bool { return msg.Body == refundMessage })).
		Return(&service.BatchResult{Sent: 1}, nil)

	result, err := svc.HandleOrderEvent(ctx, orderEventFor(userID, constants.EventOrderRefunded, entity.OrderStatusCancelled))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestNotificationService_HandleOrderEvent_GuestOrderSkipped(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)

	event := orderEventFor(uuid.New(), constants.EventOrderConfirmed, entity.OrderStatusConfirmed)
	event.UserID = ""

	result, err := svc.HandleOrderEvent(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{}, result)
}

func TestNotificationService_HandleOrderEvent_PendingHasNoMessage(t *testing.T) {
	svc, _, _ := createTestNotificationService(t)

	result, err := svc.HandleOrderEvent(context.Background(),
		orderEventFor(uuid.New(), constants.EventOrderStatusChanged, entity.OrderStatusPending))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestNotificationService_HandleOrderEvent_NoDevices(t *testing.T) {
	svc, deviceRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{}, nil)

	result, err := svc.HandleOrderEvent(ctx, orderEventFor(userID, constants.EventOrderConfirmed, entity.OrderStatusConfirmed))
	require.NoError(t, err)
	assert.Zero(t, result.Sent)
}

func TestNotificationService_HandleOrderEvent_InvalidTokensRemoved(t *testing.T) {
	svc, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "valid"},
			{ID: uuid.New(), UserID: userID, FCMToken: "stale"},
		}, nil)

	notificationSvc.EXPECT().
		SendBatch(ctx, []string{"valid", "stale"}, mock.Anything).
		Return(&service.BatchResult{Sent: 1, Failed: 1, InvalidTokens: []string{"stale"}}, nil)

	deviceRepo.EXPECT().
		DeleteDevicesByTokens(ctx, []string{"stale"}).
		Return(nil)

	result, err := svc.HandleOrderEvent(ctx, orderEventFor(userID, constants.EventOrderConfirmed, entity.OrderStatusConfirmed))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestNotificationService_HandleOrderEvent_Batches(t *testing.T) {
	svc, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	devices := make([]*entity.UserDevice, 0, 750)
	for i := range 750 {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i)})
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(devices, nil)

	notificationSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), mock.Anything).
		Return(&service.BatchResult{Sent: 500}, nil).
		Once()
	notificationSvc.EXPECT().
		SendBatch(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 250 }), mock.Anything).
		Return(&service.BatchResult{Sent: 250}, nil).
		Once()

	result, err := svc.HandleOrderEvent(ctx, orderEventFor(userID, constants.EventOrderConfirmed, entity.OrderStatusConfirmed))
	require.NoError(t, err)
	assert.Equal(t, 750, result.Sent)
}

func TestNotificationService_HandleOrderEvent_DeviceLookupRetryable(t *testing.T) {
	svc, deviceRepo, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, errors.New("connection refused"))

	result, err := svc.HandleOrderEvent(ctx, orderEventFor(userID, constants.EventOrderConfirmed, entity.OrderStatusConfirmed))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, usecase.IsRetryableError(err))
}

func TestNotificationService_HandleOrderEvent_TransportRetryable(t *testing.T) {
	svc, deviceRepo, notificationSvc := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{ID: uuid.New(), UserID: userID, FCMToken: "token"}}, nil)

	notificationSvc.EXPECT().
		SendBatch(ctx, []string{"token"}, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))

	_, err := svc.HandleOrderEvent(ctx, orderEventFor(userID, constants.EventOrderConfirmed, entity.OrderStatusConfirmed))
	require.Error(t, err)
	assert.True(t, usecase.IsRetryableError(err))
	assert.Contains(t, err.Error(), "fcm unavailable")
}

func createTestReminderService(t *testing.T) (
	usecase.OrderNotificationUsecase,
	*mockRepo.MockOrderRepository,
	*mockRepo.MockDeviceRepository,
	*mockSvc.MockNotificationService,
) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	svc := NewNotificationService(NotificationServiceParams{
		OrderRepo:       orderRepo,
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return svc, orderRepo, deviceRepo, notificationSvc
}

func TestNotificationService_SendDueReminders(t *testing.T) {
	svc, orderRepo, deviceRepo, notificationSvc := createTestReminderService(t)

	ctx := context.Background()
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	collector := uuid.New()
	recipient := uuid.New()
	pickup := &entity.Order{
		ID: uuid.New(), OrderNumber: "AUR20261010-0001", UserID: &collector,
		Status: entity.OrderStatusConfirmed, DeliveryType: entity.DeliveryTypePickup, DeliveryTime: "10:00",
	}
	delivery := &entity.Order{
		ID: uuid.New(), OrderNumber: "AUR20261010-0002", UserID: &recipient,
		Status: entity.OrderStatusPreparing, DeliveryType: entity.DeliveryTypeDelivery,
	}
	guest := &entity.Order{ID: uuid.New(), OrderNumber: "AUR20261010-0003", Status: entity.OrderStatusConfirmed}

	orderRepo.EXPECT().
		FindOrdersDueOn(ctx, day, []entity.OrderStatus{entity.OrderStatusConfirmed, entity.OrderStatusPreparing}).
		Return([]*entity.Order{pickup, delivery, guest}, nil)

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, collector).
		Return([]*entity.UserDevice{{UserID: collector, FCMToken: "collector-token", IsActive: true}}, nil)
	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, recipient).
		Return([]*entity.UserDevice{{UserID: recipient, FCMToken: "recipient-token", IsActive: true}}, nil)

	notificationSvc.EXPECT().
		SendBatch(ctx, []string{"collector-token"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == "Order #AUR20261010-0001 reminder" &&
				msg.Body == "Your order #AUR20261010-0001 is scheduled for collection tomorrow at 10:00." &&
				msg.Data["type"] == constants.EventOrderReminder &&
				msg.Data["order_id"] == pickup.ID.String()
		})).
		Return(&service.BatchResult{Sent: 1}, nil)
	notificationSvc.EXPECT().
		SendBatch(ctx, []string{"recipient-token"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Body == "Your order #AUR20261010-0002 is scheduled for delivery tomorrow."
		})).
		Return(&service.BatchResult{Sent: 1}, nil)

	result, err := svc.SendDueReminders(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{Sent: 2}, result)
}

func TestNotificationService_SendDueReminders_OneFailureDoesNotStopOthers(t *testing.T) {
	svc, orderRepo, deviceRepo, notificationSvc := createTestReminderService(t)

	ctx := context.Background()
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	first := uuid.New()
	second := uuid.New()

	orderRepo.EXPECT().FindOrdersDueOn(ctx, day, mock.Anything).Return([]*entity.Order{
		{ID: uuid.New(), OrderNumber: "AUR1", UserID: &first, Status: entity.OrderStatusConfirmed},
		{ID: uuid.New(), OrderNumber: "AUR2", UserID: &second, Status: entity.OrderStatusConfirmed},
	}, nil)

	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, first).Return(nil, errors.New("connection reset"))
	deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, second).
		Return([]*entity.UserDevice{{UserID: second, FCMToken: "t2", IsActive: true}}, nil)
	notificationSvc.EXPECT().SendBatch(ctx, []string{"t2"}, mock.Anything).Return(&service.BatchResult{Sent: 1}, nil)

	result, err := svc.SendDueReminders(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestNotificationService_SendDueReminders_LookupFailureIsRetryable(t *testing.T) {
	svc, orderRepo, _, _ := createTestReminderService(t)

	ctx := context.Background()
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	orderRepo.EXPECT().FindOrdersDueOn(ctx, day, mock.Anything).Return(nil, errors.New("timeout"))

	result, err := svc.SendDueReminders(ctx, day)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, usecase.IsRetryableError(err))
}
