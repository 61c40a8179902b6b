package impl

import (
	"context"

	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/errors"
	"lostfound/internal/proximity"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultInboxPageSize = 20
	maxInboxPageSize     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// ListNotifications returns one page of the user's inbox, newest first
func (s *notificationService) ListNotifications(ctx context.Context, userID string, page, pageSize int) (*usecase.NotificationPage, error) {
	page = max(page, 1)
	if pageSize <= 0 {
		pageSize = defaultInboxPageSize
	}
	pageSize = min(pageSize, maxInboxPageSize)

	notifications, total, err := s.notificationRepo.FindNotificationsByRecipient(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications")
	}

	return &usecase.NotificationPage{
		Notifications: notifications,
		TotalPages:    proximity.TotalPages(int(total), pageSize),
		CurrentPage:   page,
		Total:         int(total),
	}, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
		}

		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications as read")
	}

	return updated, nil
}
