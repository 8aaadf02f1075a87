package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aurelise/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func doReminders(h *PushHandler, target string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	_ = h.HandleReminders(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_HandleReminders(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantDay    time.Time
		ucErr      error
		wantStatus int
	}{
		{
			name:       "defaults to tomorrow",
			target:     "/reminders",
			wantDay:    time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC),
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit date",
			target:     "/reminders?date=2026-12-24",
			wantDay:    time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
			wantStatus: http.StatusOK,
		},
		{
			name:       "malformed date",
			target:     "/reminders?date=24/12/2026",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "order lookup failed",
			target:     "/reminders",
			wantDay:    time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC),
			ucErr:      usecase.NewRetryableError(errors.New("timeout")),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newTestPushHandler(t)

			if !tt.wantDay.IsZero() {
				var result *usecase.NotificationResult
				if tt.ucErr == nil {
					result = &usecase.NotificationResult{Sent: 3, Failed: 1}
				}
				notificationUC.EXPECT().SendDueReminders(mock.Anything, tt.wantDay).Return(result, tt.ucErr).Once()
			}

			rec := doReminders(h, tt.target, nil)
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var summary ReminderSummary
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
				assert.Equal(t, ReminderSummary{Day: tt.wantDay.Format(time.DateOnly), Sent: 3, Failed: 1}, summary)
			}
		})
	}
}

func TestPushHandler_HandleReminders_RequiresToken(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verifyPushAuth = true
	h.validate = func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("signature mismatch")
	}

	rec := doReminders(h, "/reminders", http.Header{"Authorization": []string{"Bearer forged"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
