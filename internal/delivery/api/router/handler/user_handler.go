package handler

import (
	"log/slog"
	"net/http"

	"lostfound/internal/delivery/api/response"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/errors"
	"lostfound/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler serves the caller's own profile.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SyncProfileRequest is the body of PUT /me.
type SyncProfileRequest struct {
	Name string `json:"name" validate:"max=120"`
}

// UpdateLocationRequest is the body of PUT /me/location.
type UpdateLocationRequest struct {
	GPS string `json:"gps" validate:"required,latlng"`
}

// SyncProfile creates or refreshes the caller's profile from the token identity.
func (h *UserHandler) SyncProfile(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req SyncProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.SyncProfile(c.Request().Context(), author, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	user, err := h.userUC.GetProfile(c.Request().Context(), author.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *UserHandler) UpdateLocation(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	user, err := h.userUC.UpdateLocation(c.Request().Context(), author, req.GPS)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user)
}
