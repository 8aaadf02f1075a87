package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"aurelise/internal/delivery/api/response"
	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	"aurelise/internal/domain/repository"
	"aurelise/internal/domain/service"
	"aurelise/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates Bearer access tokens and authorizes roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewAuthMiddleware creates the access guard.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		userID, ok := m.authenticate(header)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}
		deliverycontext.SetUserID(c, userID)

		return next(c)
	}
}

// OptionalAuthenticate identifies the caller when a valid token is sent and
// otherwise lets the request through anonymously.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
			if userID, ok := m.authenticate(header); ok {
				deliverycontext.SetUserID(c, userID)
			}
		}

		return next(c)
	}
}

// RequireRole loads the caller's stored role and checks it against roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := deliverycontext.GetUserID(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}

			ctx := c.Request().Context()
			role, err := m.userRepo.FindRole(ctx, userID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					return response.Forbidden(c, "FORBIDDEN", "Permission denied")
				}
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Failed to load role",
					slog.Any("error", err),
					slog.String("user_id", userID.String()),
				)

				return errors.Wrap(err, "failed to load role")
			}

			if !slices.Contains(roles, role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied")
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) authenticate(header string) (uuid.UUID, bool) {
	tokenString, found := strings.CutPrefix(header, bearerPrefix)
	if !found || tokenString == "" {
		return uuid.Nil, false
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil || claims.Type != service.TokenTypeAccess {
		return uuid.Nil, false
	}

	return claims.UserID, claims.UserID != uuid.Nil
}

// GetUserID returns the user authenticated for this request.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
