package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var statusMessages = map[entity.OrderStatus]string{
	entity.OrderStatusConfirmed: "Your order has been confirmed and we'll begin preparing your treats!",
	entity.OrderStatusPreparing: "Great news! We're now preparing your order with love and care.",
	entity.OrderStatusReady:     "Your order is ready! Please collect it at your scheduled time.",
	entity.OrderStatusCompleted: "Thank you! Your order has been completed. We hope you enjoyed every bite!",
	entity.OrderStatusCancelled: "We're sorry, but your order has been cancelled. If you have any questions, please contact us.",
}

const refundMessage = "Your refund has been processed. It may take a few days to appear on your statement."

var reminderStatuses = []entity.OrderStatus{entity.OrderStatusConfirmed, entity.OrderStatusPreparing}

type notificationService struct {
	orderRepo       repository.OrderRepository
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NotificationServiceParams holds dependencies for the order notification service, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	OrderRepo       repository.OrderRepository
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewNotificationService creates the order notification service.
func NewNotificationService(params NotificationServiceParams) usecase.OrderNotificationUsecase {
	return &notificationService{
		orderRepo:       params.OrderRepo,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

// HandleOrderEvent pushes the event to every active device of the order's owner.
func (s *notificationService) HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*usecase.NotificationResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("eventType", event.Type),
		slog.String("orderNumber", event.OrderNumber),
	)
	result := &usecase.NotificationResult{}

	if event.UserID == "" {
		logger.Debug("Skipping guest order event")

		return result, nil
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		logger.Warn("Dropping event with malformed user id", slog.String("userID", event.UserID))

		return result, nil
	}

	body, ok := messageFor(event)
	if !ok {
		logger.Debug("No customer message for event", slog.String("status", event.Status))

		return result, nil
	}

	msg := service.PushMessage{
		Title: "Order #" + event.OrderNumber + " update",
		Body:  body,
		Data: map[string]string{
			"type":         event.Type,
			"order_id":     event.OrderID,
			"order_number": event.OrderNumber,
			"status":       event.Status,
		},
	}

	result, err = s.pushToUser(ctx, logger, userID, msg)
	if err != nil {
		return nil, err
	}

	logger.Info("Order notification sent",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("invalidTokens", result.InvalidTokens),
	)

	return result, nil
}

// SendDueReminders reminds customers of confirmed or preparing orders due on day.
// One failing order does not stop the others; it is counted as failed.
func (s *notificationService) SendDueReminders(ctx context.Context, day time.Time) (*usecase.NotificationResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("day", day.Format(time.DateOnly)))

	orders, err := s.orderRepo.FindOrdersDueOn(ctx, day, reminderStatuses)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to find orders due"))
	}

	result := &usecase.NotificationResult{}
	for _, order := range orders {
		if order.UserID == nil {
			continue
		}

		orderLogger := logger.With(slog.String("orderNumber", order.OrderNumber))
		sent, err := s.pushToUser(ctx, orderLogger, *order.UserID, reminderMessage(order))
		if err != nil {
			orderLogger.Warn("Failed to send reminder", slog.Any("error", err))
			result.Failed++

			continue
		}

		result.Sent += sent.Sent
		result.Failed += sent.Failed
		result.InvalidTokens += sent.InvalidTokens
	}

	logger.Info("Order reminders sent",
		slog.Int("orders", len(orders)),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// pushToUser sends msg to every active device of the user and deactivates rejected tokens.
func (s *notificationService) pushToUser(ctx context.Context, logger *slog.Logger, userID uuid.UUID, msg service.PushMessage) (*usecase.NotificationResult, error) {
	result := &usecase.NotificationResult{}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to fetch devices"))
	}
	if len(devices) == 0 {
		logger.Debug("User has no active devices", slog.Any("userID", userID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var invalidTokens []string
	for batch := range slices.Chunk(tokens, service.MaxBatchTokens) {
		batchResult, err := s.notificationSvc.SendBatch(ctx, batch, msg)
		if err != nil {
			return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to send notification batch"))
		}

		result.Sent += batchResult.Sent
		result.Failed += batchResult.Failed
		invalidTokens = append(invalidTokens, batchResult.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		result.InvalidTokens = len(invalidTokens)
		if err := s.deviceRepo.DeleteDevicesByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("Failed to deactivate invalid devices", slog.Any("error", err))
		}
	}

	return result, nil
}

func reminderMessage(order *entity.Order) service.PushMessage {
	when := "collection"
	if order.DeliveryType == entity.DeliveryTypeDelivery {
		when = "delivery"
	}
	body := "Your order #" + order.OrderNumber + " is scheduled for " + when + " tomorrow"
	if order.DeliveryTime != "" {
		body += " at " + order.DeliveryTime
	}

	return service.PushMessage{
		Title: "Order #" + order.OrderNumber + " reminder",
		Body:  body + ".",
		Data: map[string]string{
			"type":         constants.EventOrderReminder,
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
			"status":       order.Status.String(),
		},
	}
}

func messageFor(event *service.OrderEvent) (string, bool) {
	if event.Type == constants.EventOrderRefunded {
		return refundMessage, true
	}

	message, ok := statusMessages[entity.OrderStatus(event.Status)]

	return message, ok
}
