package impl

import (
	"context"
	"time"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or updates an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID string, deviceInfo *usecase.DeviceInfo) (*entity.UserDevice, error) {
	existing, err := s.deviceRepo.FindDeviceByClientID(ctx, userID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		if err := s.deviceRepo.UpdateFCMToken(ctx, existing.ID, deviceInfo.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to update FCM token")
		}

		updated, err := s.deviceRepo.FindDeviceByID(ctx, existing.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find device by ID")
		}

		return updated, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device by client ID")
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

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, userID string, deviceID uuid.UUID, fcmToken string) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.UpdateFCMToken(ctx, deviceID, fcmToken); err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return nil
}

// GetUserDevices retrieves all active devices for a user
func (s *deviceService) GetUserDevices(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// DeactivateDevice deactivates a device (soft delete)
func (s *deviceService) DeactivateDevice(ctx context.Context, userID string, deviceID uuid.UUID) error {
	if _, err := s.ownedDevice(ctx, userID, deviceID); err != nil {
		return err
	}

	if err := s.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}

func (s *deviceService) ownedDevice(ctx context.Context, userID string, deviceID uuid.UUID) (*entity.UserDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	if device.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrDeviceForbidden, "device does not belong to user")
	}

	return device, nil
}
