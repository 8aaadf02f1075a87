// Package handler turns delivered order events into customer notifications.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"aurelise/config"
	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/service"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a Pub/Sub push delivery.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// ErrMalformedEvent marks a delivery that can never be processed.
var ErrMalformedEvent = errors.New("malformed order event")

// tokenValidator checks a Google-signed OIDC token.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler consumes order events delivered by push or pulled from a subscription,
// and the scheduled reminder trigger.
type PushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	logger         *slog.Logger
	notificationUC usecase.OrderNotificationUsecase
	now            func() time.Time
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config         *config.Config
	Logger         *slog.Logger
	NotificationUC usecase.OrderNotificationUsecase
}

// NewPushHandler creates the order event consumer.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google push deliveries outside development carry an OIDC token.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		notificationUC: params.NotificationUC,
		now:            time.Now,
	}
}

// HandlePush answers 503 for retryable failures so Pub/Sub redelivers, and
// 200 for everything else, malformed messages included.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	if err := h.Process(ctx, data, pushMsg.Message.Attributes); err != nil && usecase.IsRetryableError(err) {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// Process decodes one event and notifies its customer. Malformed events
// return ErrMalformedEvent; transient failures are retryable errors.
func (h *PushHandler) Process(ctx context.Context, data []byte, attributes map[string]string) error {
	var event service.OrderEvent
	if err := json.Unmarshal(data, &event); err != nil || event.OrderID == "" || event.Type == "" {
		h.logger.Error("[Worker] Failed to parse order event", slog.Any("error", err), slog.Int("bytes", len(data)))

		return ErrMalformedEvent
	}

	requestID := extractRequestID(ctx, attributes, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing order event",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
		slog.String("status", event.Status),
	)

	result, err := h.notificationUC.HandleOrderEvent(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to process order event",
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
			slog.Bool("retryable", usecase.IsRetryableError(err)),
		)

		return err
	}

	if result != nil {
		reqLogger.Info("[Worker] Order event processed",
			slog.String("order_id", event.OrderID),
			slog.Int("sent", result.Sent),
			slog.Int("failed", result.Failed),
			slog.Int("invalid_tokens", result.InvalidTokens),
		)
	}

	return nil
}

// extractRequestID prefers message attributes, then the event, then the delivery request.
func extractRequestID(ctx context.Context, attributes map[string]string, event *service.OrderEvent) string {
	if requestID := attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
