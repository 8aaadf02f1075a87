package handler

import (
	"log/slog"

	"aurelise/internal/delivery/api/response"
	"aurelise/internal/domain/entity"
	"aurelise/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves the push notification devices of a customer.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice registers a device or refreshes an existing one.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RegisterDeviceRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: entity.DevicePlatform(req.Platform),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, device)
}

// ListDevices lists the active devices.
func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, devices)
}

// UpdateFCMToken replaces the push token of a device.
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateFCMTokenRequest
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), userID, deviceID, req.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "FCM token updated successfully")
}

// DeactivateDevice stops pushes to a device.
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	deviceID, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Device deactivated successfully")
}
