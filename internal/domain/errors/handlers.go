package errors

import "net/http"

// ErrorInfo is the error body returned by the storefront API.
type ErrorInfo struct {
	Code    string `json:"code"` // Stable machine-readable code, e.g. "SIZE_UNAVAILABLE"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// NewErrorInfo builds the error body for a response with the given status.
// Details never leave the server on 5xx, 401 or 403 responses.
func NewErrorInfo(status int, code, message string, details any) *ErrorInfo {
	if status >= http.StatusInternalServerError ||
		status == http.StatusUnauthorized ||
		status == http.StatusForbidden {
		details = nil
	}
	if s, ok := details.(string); ok && s == "" {
		details = nil
	}

	return &ErrorInfo{Code: code, Message: message, Details: details}
}

// MetaInfo carries request metadata on every response.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse wraps the data of a successful call.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps a failed call.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
