// Package handler contains the HTTP handlers of the storefront API.
package handler

import (
	"log/slog"

	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/entity"
	"aurelise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves sign-up, sign-in and session endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
}

// LoginRequest is the sign-in form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GoogleLoginRequest carries a Google ID token.
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RefreshTokenRequest carries a refresh token.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is returned by every sign-in flow.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// Register opens an account and signs it in.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Register(c.Request().Context(), usecase.RegisterInput{
		Email:         req.Email,
		Password:      req.Password,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		CartSessionID: cartSession(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, toAuthResponse(output))
}

// Login signs in with email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:         req.Email,
		Password:      req.Password,
		CartSessionID: cartSession(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toAuthResponse(output))
}

// GoogleLogin signs in with a Google ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req GoogleLoginRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.GoogleLogin(c.Request().Context(), usecase.GoogleLoginInput{
		IDToken:       req.IDToken,
		CartSessionID: cartSession(c),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, toAuthResponse(output))
}

// RefreshToken issues a new access token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"access_token": output.AccessToken})
}

// Logout revokes a refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.authUC.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Successfully logged out")
}

func toAuthResponse(output *usecase.AuthOutput) AuthResponse {
	return AuthResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         output.User,
	}
}
