package errors

import (
	"net/http"

	"aurelise/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same business code, so errors
// decorated by WithDetails still compare equal to their predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"An account with this email already exists",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Failed to create account",
		"",
	)

	ErrInvalidRole = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ROLE",
		"Invalid role",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid Google ID token",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductSlugTaken = NewBaseError(
		http.StatusConflict,
		"PRODUCT_SLUG_TAKEN",
		"A product with this slug already exists",
		"",
	)

	ErrReviewNotFound = NewBaseError(
		http.StatusNotFound,
		"REVIEW_NOT_FOUND",
		"Review not found",
		"",
	)

	ErrWishlistDuplicate = NewBaseError(
		http.StatusConflict,
		"WISHLIST_DUPLICATE",
		"Product already in wishlist",
		"",
	)

	// Content-related errors
	ErrPostNotFound = NewBaseError(
		http.StatusNotFound,
		"POST_NOT_FOUND",
		"Post not found",
		"",
	)

	ErrPageNotFound = NewBaseError(
		http.StatusNotFound,
		"PAGE_NOT_FOUND",
		"Page not found",
		"",
	)

	ErrContentSlugTaken = NewBaseError(
		http.StatusConflict,
		"CONTENT_SLUG_TAKEN",
		"Content with this slug already exists",
		"",
	)

	// Cart-related errors
	ErrCartIdentityMissing = NewBaseError(
		http.StatusBadRequest,
		"CART_IDENTITY_MISSING",
		"Sign in or provide a cart session",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	ErrSizeUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"SIZE_UNAVAILABLE",
		"Size unavailable",
		"",
	)

	// Checkout-related errors
	ErrAllergenNotAcknowledged = NewBaseError(
		http.StatusBadRequest,
		"ALLERGEN_NOT_ACKNOWLEDGED",
		"Please acknowledge the allergen information",
		"",
	)

	ErrLeadTimeTooShort = NewBaseError(
		http.StatusBadRequest,
		"LEAD_TIME_TOO_SHORT",
		"Delivery date must be at least 3 days in advance",
		"",
	)

	ErrDeliveryAddressRequired = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_ADDRESS_REQUIRED",
		"Delivery address is required for delivery orders",
		"",
	)

	ErrCartEmpty = NewBaseError(
		http.StatusBadRequest,
		"CART_EMPTY",
		"Cart is empty",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidOrderStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ORDER_STATUS",
		"Invalid status",
		"",
	)

	ErrStatusTransitionNotAllowed = NewBaseError(
		http.StatusConflict,
		"STATUS_TRANSITION_NOT_ALLOWED",
		"Status transition not allowed",
		"",
	)

	ErrInvalidQRCode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QR_CODE",
		"Invalid pickup code",
		"",
	)

	// Payment-related errors
	ErrOrderAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"ORDER_ALREADY_PAID",
		"Order already paid",
		"",
	)

	ErrOrderOrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_OR_PAYMENT_NOT_FOUND",
		"Order or payment not found",
		"",
	)

	ErrRefundAmountInvalid = NewBaseError(
		http.StatusBadRequest,
		"REFUND_AMOUNT_INVALID",
		"Refund amount exceeds the refundable balance",
		"",
	)

	ErrPaymentProviderFailed = NewBaseError(
		http.StatusInternalServerError,
		"PAYMENT_PROVIDER_FAILED",
		"Payment provider request failed",
		"",
	)

	ErrPayloadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PAYLOAD_TOO_LARGE",
		"Payload too large",
		"",
	)

	ErrMissingSignature = NewBaseError(
		http.StatusBadRequest,
		"MISSING_SIGNATURE",
		"No signature",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SIGNATURE",
		"Invalid signature",
		"",
	)

	// Settings-related errors
	ErrInvalidSetting = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SETTING",
		"Invalid setting value",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
