package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"
	mockRepo "aurelise/internal/mocks/repository"
	mockSvc "aurelise/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	guard    *AuthMiddleware
	tokenSvc *mockSvc.MockTokenService
	userRepo *mockRepo.MockUserRepository
}

func newAuthFixtures(t *testing.T) authFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return authFixtures{
		guard: NewAuthMiddleware(AuthMiddlewareParams{
			TokenService: tokenSvc,
			UserRepo:     userRepo,
			Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		tokenSvc: tokenSvc,
		userRepo: userRepo,
	}
}

func newRequest(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

// reached records whether the wrapped handler ran and which user it saw.
type reached struct {
	called bool
	userID uuid.UUID
	ok     bool
}

func (r *reached) handler(c echo.Context) error {
	r.called = true
	r.userID, r.ok = deliverycontext.GetUserID(c)

	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		claims     *service.Claims
		tokenErr   error
		wantStatus int
	}{
		{name: "valid access token", header: "Bearer good", claims: &service.Claims{UserID: userID, Type: "access"}, wantStatus: http.StatusNoContent},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", tokenErr: errors.New("signature is invalid"), wantStatus: http.StatusUnauthorized},
		{name: "refresh token used as access", header: "Bearer refresh", claims: &service.Claims{UserID: userID, Type: "refresh"}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixtures(t)
			c, rec := newRequest(tt.header)

			if tt.claims != nil || tt.tokenErr != nil {
				token := tt.header[len(bearerPrefix):]
				f.tokenSvc.EXPECT().ValidateToken(token).Return(tt.claims, tt.tokenErr).Once()
			}

			var r reached
			require.NoError(t, f.guard.Authenticate(r.handler)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusNoContent, r.called)
			if r.called {
				assert.True(t, r.ok)
				assert.Equal(t, userID, r.userID)
			}
		})
	}
}

func TestOptionalAuthenticate(t *testing.T) {
	t.Run("anonymous passes through", func(t *testing.T) {
		f := newAuthFixtures(t)
		c, rec := newRequest("")

		var r reached
		require.NoError(t, f.guard.OptionalAuthenticate(r.handler)(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.True(t, r.called)
		assert.False(t, r.ok)
	})

	t.Run("invalid token is treated as anonymous", func(t *testing.T) {
		f := newAuthFixtures(t)
		c, _ := newRequest("Bearer expired")
		f.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired")).Once()

		var r reached
		require.NoError(t, f.guard.OptionalAuthenticate(r.handler)(c))

		assert.True(t, r.called)
		assert.False(t, r.ok)
	})

	t.Run("valid token identifies the caller", func(t *testing.T) {
		f := newAuthFixtures(t)
		userID := uuid.New()
		c, _ := newRequest("Bearer good")
		f.tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Type: "access"}, nil).Once()

		var r reached
		require.NoError(t, f.guard.OptionalAuthenticate(r.handler)(c))

		assert.True(t, r.ok)
		assert.Equal(t, userID, r.userID)
	})
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		roleErr    error
		allowed    []entity.Role
		wantStatus int
	}{
		{name: "admin on admin route", role: entity.RoleAdmin, allowed: []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin}, wantStatus: http.StatusNoContent},
		{name: "super admin on admin route", role: entity.RoleSuperAdmin, allowed: []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin}, wantStatus: http.StatusNoContent},
		{name: "customer on admin route", role: entity.RoleCustomer, allowed: []entity.Role{entity.RoleAdmin, entity.RoleSuperAdmin}, wantStatus: http.StatusForbidden},
		{name: "admin on role management", role: entity.RoleAdmin, allowed: []entity.Role{entity.RoleSuperAdmin}, wantStatus: http.StatusForbidden},
		{name: "deleted account", roleErr: repository.ErrUserNotFound, allowed: []entity.Role{entity.RoleAdmin}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixtures(t)
			c, rec := newRequest("")
			userID := uuid.New()
			deliverycontext.SetUserID(c, userID)

			f.userRepo.EXPECT().FindRole(mock.Anything, userID).Return(tt.role, tt.roleErr).Once()

			var r reached
			require.NoError(t, f.guard.RequireRole(tt.allowed...)(r.handler)(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusNoContent, r.called)
		})
	}
}

func TestRequireRole_StoreFailureIsReturned(t *testing.T) {
	f := newAuthFixtures(t)
	c, _ := newRequest("")
	userID := uuid.New()
	deliverycontext.SetUserID(c, userID)

	f.userRepo.EXPECT().FindRole(mock.Anything, userID).Return("", errors.New("connection reset")).Once()

	var r reached
	err := f.guard.RequireRole(entity.RoleAdmin)(r.handler)(c)

	require.Error(t, err)
	assert.False(t, r.called)
}

func TestRequireRole_WithoutAuthentication(t *testing.T) {
	f := newAuthFixtures(t)
	c, rec := newRequest("")

	var r reached
	require.NoError(t, f.guard.RequireRole(entity.RoleAdmin)(r.handler)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, r.called)
}
