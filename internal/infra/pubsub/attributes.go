package pubsub

import "aurelise/internal/domain/service"

// eventAttributes are the message attributes carried by every provider for filtering and tracing.
func eventAttributes(event *service.OrderEvent) map[string]string {
	attributes := map[string]string{
		"type":     event.Type,
		"order_id": event.OrderID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
