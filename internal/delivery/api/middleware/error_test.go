package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "business error keeps details",
			err:         errors.Wrap(domainerrors.ErrRefundAmountInvalid.WithDetails("refund exceeds 47.80"), "refund"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    domainerrors.ErrRefundAmountInvalid.ErrorCode(),
			wantDetails: "refund exceeds 47.80",
		},
		{
			name:       "server error hides details",
			err:        domainerrors.ErrPaymentProviderFailed.WithDetails("stripe: card_declined"),
			wantStatus: domainerrors.ErrPaymentProviderFailed.HTTPCode(),
			wantCode:   domainerrors.ErrPaymentProviderFailed.ErrorCode(),
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body domainerrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
