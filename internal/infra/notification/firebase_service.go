// Package notification delivers order updates to customer devices.
package notification

import (
	"context"
	"log/slog"

	"aurelise/config"
	"aurelise/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client used for delivery.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a Firebase Cloud Messaging backed NotificationService.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// Send pushes msg to a single device token.
func (s *firebaseService) Send(ctx context.Context, token string, msg service.PushMessage) error {
	message := &messaging.Message{
		Token:        token,
		Notification: notificationOf(msg),
		Data:         msg.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	return nil
}

// SendBatch pushes msg to every token in one multicast request. Tokens FCM
// reports as unregistered or malformed come back in InvalidTokens.
func (s *firebaseService) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.BatchResult, error) {
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}
	if len(tokens) > service.MaxBatchTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxBatchTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens:       tokens,
		Notification: notificationOf(msg),
		Data:         msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		Sent:   response.SuccessCount,
		Failed: response.FailureCount,
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

func notificationOf(msg service.PushMessage) *messaging.Notification {
	return &messaging.Notification{
		Title: msg.Title,
		Body:  msg.Body,
	}
}

// logNotifier records notifications instead of sending them when Firebase is not configured.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a NotificationService that only logs.
func NewLogNotifier(logger *slog.Logger) service.NotificationService {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Send(ctx context.Context, _ string, msg service.PushMessage) error {
	n.logger.InfoContext(ctx, "Notification skipped, push delivery disabled",
		slog.String("title", msg.Title),
		slog.Int("tokens", 1),
	)

	return nil
}

func (n *logNotifier) SendBatch(ctx context.Context, tokens []string, msg service.PushMessage) (*service.BatchResult, error) {
	n.logger.InfoContext(ctx, "Notification skipped, push delivery disabled",
		slog.String("title", msg.Title),
		slog.Int("tokens", len(tokens)),
	)

	return &service.BatchResult{Sent: len(tokens)}, nil
}
