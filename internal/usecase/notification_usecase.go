package usecase

import (
	"context"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationPage is one page of a user's inbox.
type NotificationPage struct {
	Notifications []*entity.Notification `json:"notifications"`
	TotalPages    int                    `json:"totalPages"`
	CurrentPage   int                    `json:"currentPage"`
	Total         int                    `json:"total"`
}

// NotificationUsecase defines the in-app inbox operations.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID string, page, pageSize int) (*NotificationPage, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID string, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
