// Package middleware holds the API-only echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"aurelise/internal/delivery/api/response"
	deliverycontext "aurelise/internal/delivery/context"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error that escapes a handler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the central error handler.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
