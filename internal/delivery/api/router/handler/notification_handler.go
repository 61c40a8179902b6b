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

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the caller's in-app inbox.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotificationsRequest holds the query of GET /notifications.
type ListNotificationsRequest struct {
	Page     int `query:"page" validate:"min=0"`
	PageSize int `query:"pageSize" validate:"min=0,max=100"`
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req ListNotificationsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid pagination query")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	page, err := h.notificationUC.ListNotifications(c.Request().Context(), author.ID, req.Page, req.PageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	count, err := h.notificationUC.UnreadCount(c.Request().Context(), author.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notificationUC.MarkRead(c.Request().Context(), author.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), author.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated})
}
