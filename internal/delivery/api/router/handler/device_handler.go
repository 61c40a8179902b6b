package handler

import (
	"log/slog"
	"net/http"

	"lostfound/internal/delivery/api/response"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/errors"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
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
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	DeviceID string `json:"device_id" validate:"required,max=128"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	deviceInfo := &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), author.ID, deviceInfo)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetUserDevices handles retrieving all user devices
func (h *DeviceHandler) GetUserDevices(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	devices, err := h.deviceUC.GetUserDevices(c.Request().Context(), author.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, devices)
}

// UpdateFCMToken handles updating FCM token for a device
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req UpdateFCMTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid FCM token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	if err := h.deviceUC.UpdateFCMToken(c.Request().Context(), author.ID, deviceID, req.FCMToken); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated successfully"})
}

// DeactivateDevice handles deactivating a device
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), author.ID, deviceID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
