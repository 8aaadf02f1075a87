package usecase

import (
	"context"

	"aurelise/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is what a client sends to receive order notifications.
type DeviceInfo struct {
	FCMToken string
	DeviceID string
	Platform entity.DevicePlatform
}

// DeviceUsecase manages the devices a signed-in customer gets order updates on.
// Devices belonging to another customer are reported as not found.
type DeviceUsecase interface {
	// RegisterDevice creates the device, or refreshes its token when the
	// customer already registered the same device ID.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// ListDevices returns the customer's active devices.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
