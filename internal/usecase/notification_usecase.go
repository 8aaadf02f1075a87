package usecase

import (
	"context"
	"time"

	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
)

// NotificationResult summarizes one fan-out of an order event.
type NotificationResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
}

// OrderNotificationUsecase turns order events into customer push notifications.
type OrderNotificationUsecase interface {
	// HandleOrderEvent notifies the order's owner on all active devices.
	// Failures worth redelivering are marked with NewRetryableError.
	HandleOrderEvent(ctx context.Context, event *service.OrderEvent) (*NotificationResult, error)

	// SendDueReminders reminds account holders of confirmed or preparing orders due on day.
	SendDueReminders(ctx context.Context, day time.Time) (*NotificationResult, error)
}

// retryableError marks a failure that should be redelivered by the message broker.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// NewRetryableError marks err as transient.
func NewRetryableError(err error) error {
	if err == nil {
		return nil
	}

	return &retryableError{err: err}
}

// IsRetryableError reports whether err, or anything it wraps, is transient.
func IsRetryableError(err error) bool {
	var target *retryableError

	return errors.As(err, &target)
}
