package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"aurelise/internal/delivery/api/validator"
	deliverycontext "aurelise/internal/delivery/context"
	domainerrors "aurelise/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage         `json:"data"`
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  *domainerrors.MetaInfo  `json:"meta"`
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds an echo context for a JSON request with optional path params.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withParams(c echo.Context, kv ...string) {
	names := make([]string, 0, len(kv)/2)
	values := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		names = append(names, kv[i])
		values = append(values, kv[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

func signIn(c echo.Context) uuid.UUID {
	userID := uuid.New()
	deliverycontext.SetUserID(c, userID)

	return userID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	env := decode(t, rec)
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}

