package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "aurelise/internal/delivery/context"
	"aurelise/internal/domain/entity"
	domainerrors "aurelise/internal/domain/errors"
	"aurelise/internal/domain/repository"
	"aurelise/internal/errors"
	"aurelise/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository, logger *slog.Logger) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice registers a new device or refreshes the push token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if strings.TrimSpace(deviceInfo.FCMToken) == "" || strings.TrimSpace(deviceInfo.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token and device_id are required")
	}
	if !deviceInfo.Platform.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web")
	}

	devices, err := s.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	for _, device := range devices {
		if device.DeviceID != deviceInfo.DeviceID {
			continue
		}
		if err := s.deviceRepo.UpdateFCMToken(ctx, device.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, device.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	}

	now := time.Now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  deviceInfo.FCMToken,
		DeviceID:  deviceInfo.DeviceID,
		Platform:  deviceInfo.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Device registered",
		slog.Any("userID", userID),
		slog.String("platform", string(device.Platform)),
	)

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// ListDevices retrieves all active devices for a user
func (s *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

// ownedDevice hides devices of other users behind a not-found error.
func (s *deviceService) ownedDevice(ctx context.Context, userID, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, domainerrors.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}
	if device.UserID != userID {
		return nil, domainerrors.ErrDeviceNotFound
	}

	return device, nil
}
