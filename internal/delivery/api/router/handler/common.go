package handler

import (
	"net/http"
	"strconv"
	"time"

	"aurelise/internal/delivery/api/middleware"
	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

var (
	errInvalidBody = domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", "")
	errInvalidID   = domainerrors.NewBaseError(http.StatusBadRequest, "INVALID_ID", "Invalid identifier", "")
)

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errInvalidBody.WithDetails(bindMessage(err))
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func bindMessage(err error) string {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
	}

	return err.Error()
}

// uuidParam parses the named path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errInvalidID.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

// intQuery parses an optional non-negative integer query parameter.
func intQuery(c echo.Context, name string) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || value < 0 {
		return 0
	}

	return value
}

// boolQuery parses an optional boolean query parameter.
func boolQuery(c echo.Context, name string) *bool {
	value, err := strconv.ParseBool(c.QueryParam(name))
	if err != nil {
		return nil
	}

	return &value
}

// parseDate accepts a calendar date or an RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("dates must be YYYY-MM-DD or RFC 3339")
	}

	return t, nil
}

// currentUser returns the authenticated account or ErrUnauthorized.
func currentUser(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// cartOwner resolves the cart identity: the authenticated account, else the
// X-Cart-Session header.
func cartOwner(c echo.Context) (entity.CartOwner, error) {
	if userID, ok := middleware.GetUserID(c); ok {
		return entity.CartOwner{UserID: &userID}, nil
	}

	sessionID := c.Request().Header.Get(constants.HeaderCartSession)
	if entity.IsValidSessionID(sessionID) {
		return entity.CartOwner{SessionID: sessionID}, nil
	}

	return entity.CartOwner{}, domainerrors.ErrCartIdentityMissing
}

// cartSession returns the guest session header when it is well formed.
func cartSession(c echo.Context) string {
	sessionID := c.Request().Header.Get(constants.HeaderCartSession)
	if !entity.IsValidSessionID(sessionID) {
		return ""
	}

	return sessionID
}

type messageResponse struct {
	Message string `json:"message"`
}

func message(c echo.Context, msg string) error {
	return response.OK(c, messageResponse{Message: msg})
}
