// Package response writes the JSON envelopes returned by the storefront API.
package response

import (
	"net/http"

	deliverycontext "aurelise/internal/delivery/context"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/errors"

	"github.com/labstack/echo/v4"
)

// Success writes data inside the success envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// OK writes data with 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created writes data with 201.
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Error writes the error envelope. Details are dropped for 5xx, 401 and 403.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: domainerrors.NewErrorInfo(statusCode, errorCode, message, details),
		Meta:  meta(c),
	})
}

// BadRequest writes a 400.
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError writes a 400 for a body that could not be decoded.
func BindingError(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
}

// ValidationError writes a 400 for a body that failed its validate tags.
func ValidationError(c echo.Context, err error) error {
	appErr := domainerrors.ErrValidationFailed

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), err.Error())
}

// Unauthorized writes a 401.
func Unauthorized(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden writes a 403.
func Forbidden(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// NotFound writes a 404.
func NotFound(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError writes a 500.
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError writes err when it is an AppError and otherwise hands it
// to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
