package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/service"
	mockusecase "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockusecase.MockOrderNotificationUsecase) {
	t.Helper()

	notificationUC := mockusecase.NewMockOrderNotificationUsecase(t)

	return &PushHandler{
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		notificationUC: notificationUC,
		now:            func() time.Time { return time.Date(2026, 10, 15, 23, 30, 0, 0, time.UTC) },
	}, notificationUC
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/test/subscriptions/orders"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodedEvent(t *testing.T, event service.OrderEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(data)
}

func doPush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := service.OrderEvent{
		Type:        "order.status_changed",
		OrderID:     "2b8f3e5a-6f0e-4c55-9a53-6a3a1f0c2d11",
		OrderNumber: "AUR-20261015-0001",
		UserID:      "9d1c7a44-3c1e-4a3a-8f4e-1f7b2c6d0e55",
		Status:      "READY",
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(m *mockusecase.MockOrderNotificationUsecase)
		wantStatus int
	}{
		{
			name: "event delivered",
			body: func(t *testing.T) string { return pushBody(t, encodedEvent(t, event), nil) },
			setupMock: func(m *mockusecase.MockOrderNotificationUsecase) {
				m.EXPECT().HandleOrderEvent(mock.Anything, mock.MatchedBy(func(e *service.OrderEvent) bool {
					return e.OrderID == event.OrderID && e.Status == "READY"
				})).Return(&usecase.NotificationResult{Sent: 2}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "retryable failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, encodedEvent(t, event), nil) },
			setupMock: func(m *mockusecase.MockOrderNotificationUsecase) {
				m.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
					Return(nil, usecase.NewRetryableError(errors.New("fcm unavailable"))).Once()
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "permanent failure is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, encodedEvent(t, event), nil) },
			setupMock: func(m *mockusecase.MockOrderNotificationUsecase) {
				m.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
					Return(nil, errors.New("order not found")).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid base64 is acknowledged",
			body:       func(t *testing.T) string { return pushBody(t, "%%%not-base64", nil) },
			setupMock:  func(m *mockusecase.MockOrderNotificationUsecase) {},
			wantStatus: http.StatusOK,
		},
		{
			name: "event without order id is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, encodedEvent(t, service.OrderEvent{Type: "order.placed"}), nil)
			},
			setupMock:  func(m *mockusecase.MockOrderNotificationUsecase) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unparseable body is acknowledged",
			body:       func(t *testing.T) string { return "{not json" },
			setupMock:  func(m *mockusecase.MockOrderNotificationUsecase) {},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newTestPushHandler(t)
			tt.setupMock(notificationUC)

			rec := doPush(h, tt.body(t), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifyPushAuth(t *testing.T) {
	event := service.OrderEvent{Type: "order.placed", OrderID: "2b8f3e5a-6f0e-4c55-9a53-6a3a1f0c2d11"}

	tests := []struct {
		name       string
		header     http.Header
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{
			name:       "missing token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     http.Header{"Authorization": []string{"Basic abc"}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token rejected",
			header:     http.Header{"Authorization": []string{"Bearer bad"}},
			validErr:   errors.New("signature mismatch"),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "foreign issuer",
			header:     http.Header{"Authorization": []string{"Bearer good"}},
			payload:    &idtoken.Payload{Issuer: "https://evil.example.com"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unverified email",
			header:     http.Header{"Authorization": []string{"Bearer good"}},
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid google token",
			header:     http.Header{"Authorization": []string{"Bearer good"}},
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newTestPushHandler(t)
			h.verifyPushAuth = true

			var gotAudience string
			h.validate = func(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
				gotAudience = audience

				return tt.payload, tt.validErr
			}
			if tt.wantStatus == http.StatusOK {
				notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
					Return(&usecase.NotificationResult{}, nil).Once()
			}

			rec := doPush(h, pushBody(t, encodedEvent(t, event), nil), tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.payload != nil || tt.validErr != nil {
				assert.Equal(t, "http://example.com/push", gotAudience)
			}
		})
	}
}

func TestPushHandler_Process_RequestID(t *testing.T) {
	event := service.OrderEvent{Type: "order.placed", OrderID: "o-1", RequestID: "from-event"}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	tests := []struct {
		name       string
		attributes map[string]string
		want       string
	}{
		{name: "attribute wins", attributes: map[string]string{"request_id": "from-attribute"}, want: "from-attribute"},
		{name: "falls back to event", want: "from-event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newTestPushHandler(t)
			notificationUC.EXPECT().HandleOrderEvent(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, _ *service.OrderEvent) (*usecase.NotificationResult, error) {
					assert.Equal(t, tt.want, deliverycontext.GetRequestIDFromContext(ctx))

					return &usecase.NotificationResult{Sent: 1}, nil
				}).Once()

			require.NoError(t, h.Process(context.Background(), data, tt.attributes))
		})
	}
}

func TestPushHandler_Process_Malformed(t *testing.T) {
	h, _ := newTestPushHandler(t)

	err := h.Process(context.Background(), []byte("not json"), nil)

	assert.ErrorIs(t, err, ErrMalformedEvent)
	assert.False(t, usecase.IsRetryableError(err))
}
