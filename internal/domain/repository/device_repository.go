package repository

import (
	"context"

	"lostfound/internal/domain/entity"
	"lostfound/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for push device persistence.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// FindDeviceByClientID retrieves a user's device by the client-supplied device identifier.
	FindDeviceByClientID(ctx context.Context, userID, clientDeviceID string) (*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a user.
	FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// UpdateFCMToken replaces the token of a device and reactivates it.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeactivateTokens marks every device holding one of tokens as inactive and returns how many changed.
	DeactivateTokens(ctx context.Context, tokens []string) (int64, error)

	// DeleteDevice removes a device by its ID (soft delete).
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
