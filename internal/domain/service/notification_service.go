package service

import (
	"context"
)

// MaxBatchTokens is the most device tokens a single SendBatch call accepts.
const MaxBatchTokens = 500

// PushMessage is a notification shown on a customer's device.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string // Handed to the app alongside the notification.
}

// BatchResult summarises one multicast delivery.
type BatchResult struct {
	Sent   int
	Failed int
	// InvalidTokens were rejected as unregistered or malformed.
	InvalidTokens []string
}

// NotificationService pushes order updates to device tokens.
type NotificationService interface {
	Send(ctx context.Context, token string, msg PushMessage) error

	// SendBatch delivers msg to at most MaxBatchTokens tokens.
	SendBatch(ctx context.Context, tokens []string, msg PushMessage) (*BatchResult, error)
}
