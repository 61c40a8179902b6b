// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new in-app notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByRecipient retrieves a page of a user's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*entity.Notification, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ?", recipientID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications by recipient")
	}

	query := base.Session(&gorm.Session{}).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var notificationModels []*model.NotificationModel
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find notifications by recipient")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, total, nil
}

// CountUnread counts a user's unread notifications.
func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one of the recipient's notifications as read. Marking an already read
// notification is not an error.
func (repo *notificationRepository) MarkRead(ctx context.Context, recipientID string, id uuid.UUID) error {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification to mark read")
	}

	if notificationM.IsRead {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_read": true,
			"read_at": time.Now(),
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every unread notification of the recipient as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]any{
			"is_read": true,
			"read_at": time.Now(),
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// UpdatePushStatus records how many devices accepted or rejected the push.
func (repo *notificationRepository) UpdatePushStatus(ctx context.Context, id uuid.UUID, sent, failed int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"push_sent":   sent,
			"push_failed": failed,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update push status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Type:        entity.NotificationType(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		Data:        data.Data,
		Link:        data.Link,
		Priority:    data.Priority,
		IsRead:      data.IsRead,
		PushSent:    data.PushSent,
		PushFailed:  data.PushFailed,
		CreatedAt:   data.CreatedAt,
		ReadAt:      data.ReadAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:          data.ID,
		RecipientID: data.RecipientID,
		Type:        string(data.Type),
		Title:       data.Title,
		Message:     data.Message,
		Data:        data.Data,
		Link:        data.Link,
		Priority:    data.Priority,
		IsRead:      data.IsRead,
		PushSent:    data.PushSent,
		PushFailed:  data.PushFailed,
		CreatedAt:   data.CreatedAt,
		ReadAt:      data.ReadAt,
	}
}
