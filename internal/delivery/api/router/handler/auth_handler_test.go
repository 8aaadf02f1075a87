package handler

import (
	"net/http"
	"testing"

	"aurelise/internal/domain/constants"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	mockUC "aurelise/internal/mocks/usecase"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: newDiscardLogger()}), authUC
}

func TestAuthHandler_Register_MergesGuestCart(t *testing.T) {
	h, authUC := newAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/auth/register",
		`{"email":"claire@example.com","password":"croissant1","first_name":"Claire","last_name":"Dubois"}`)
	c.Request().Header.Set(constants.HeaderCartSession, testSession)

	user := &entity.User{ID: uuid.New(), Email: "claire@example.com"}
	authUC.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{
			Email:         "claire@example.com",
			Password:      "croissant1",
			FirstName:     "Claire",
			LastName:      "Dubois",
			CartSessionID: testSession,
		}).
		Return(&usecase.AuthOutput{AccessToken: "at", RefreshToken: "rt", User: user}, nil).
		Once()

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out AuthResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "at", out.AccessToken)
	assert.Equal(t, "rt", out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "short password", body: `{"email":"a@b.co","password":"short","first_name":"A","last_name":"B"}`},
		{name: "bad email", body: `{"email":"not-an-email","password":"longenough","first_name":"A","last_name":"B"}`},
		{name: "missing names", body: `{"email":"a@b.co","password":"longenough"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newAuthHandler(t)
			c, rec := newContext(http.MethodPost, "/auth/register", tt.body)

			require.NoError(t, h.Register(c))
			requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
			assert.NotEmpty(t, decode(t, rec).Error.Details)
		})
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h, authUC := newAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/auth/login", `{"email":"claire@example.com","password":"wrong"}`)

	authUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "claire@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials).
		Once()

	require.NoError(t, h.Login(c))
	requireErrorCode(t, rec, http.StatusUnauthorized, domainerrors.ErrInvalidCredentials.ErrorCode())
	assert.Nil(t, decode(t, rec).Error.Details)
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	t.Run("refresh", func(t *testing.T) {
		h, authUC := newAuthHandler(t)
		c, rec := newContext(http.MethodPost, "/auth/refresh", `{"refresh_token":"rt"}`)

		authUC.EXPECT().RefreshToken(mock.Anything, "rt").Return(&usecase.RefreshOutput{AccessToken: "at2"}, nil).Once()

		require.NoError(t, h.RefreshToken(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out map[string]string
		decodeData(t, rec, &out)
		assert.Equal(t, "at2", out["access_token"])
	})

	t.Run("logout", func(t *testing.T) {
		h, authUC := newAuthHandler(t)
		c, rec := newContext(http.MethodPost, "/auth/logout", `{"refresh_token":"rt"}`)

		authUC.EXPECT().Logout(mock.Anything, "rt").Return(nil).Once()

		require.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
