package repository

import (
	"context"

	"lostfound/internal/domain/entity"
	"lostfound/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for in-app notification database operations.
type NotificationRepository interface {
	// CreateNotification persists a new in-app notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByRecipient retrieves a page of a user's notifications, newest first, with the total count.
	FindNotificationsByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.Notification, int64, error)

	// CountUnread counts a user's unread notifications.
	CountUnread(ctx context.Context, recipientID string) (int64, error)

	// MarkRead marks one of the recipient's notifications as read.
	MarkRead(ctx context.Context, recipientID string, id uuid.UUID) error

	// MarkAllRead marks every unread notification of the recipient as read and returns how many changed.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)

	// UpdatePushStatus records how many devices accepted or rejected the push.
	UpdatePushStatus(ctx context.Context, id uuid.UUID, sent, failed int) error
}
