package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	"aurelise/internal/domain/service"
)

// newOrderEvent builds the bus message describing the order's current state.
func newOrderEvent(ctx context.Context, eventType string, order *entity.Order, now time.Time) *service.OrderEvent {
	event := &service.OrderEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		OrderID:       order.ID.String(),
		OrderNumber:   order.OrderNumber,
		Status:        order.Status.String(),
		PaymentStatus: string(order.PaymentStatus),
		OccurredAt:    now.UTC(),
	}
	if order.UserID != nil {
		event.UserID = order.UserID.String()
	}

	return event
}

// publishOrderEvent announces an order change. Failures are logged and never returned.
func publishOrderEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, event *service.OrderEvent) {
	if publisher == nil {
		return
	}

	if err := publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("type", event.Type),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Order event published", slog.String("type", event.Type), slog.String("orderID", event.OrderID))
}
