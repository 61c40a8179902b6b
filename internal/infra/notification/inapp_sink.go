package notification

import (
	"context"
	"log/slog"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"

	"github.com/pkg/errors"
)

// InAppSink stores each job as an in-app notification and asks the push worker to forward it
// to the recipient's devices. Only the store step decides success; a failed publish is logged.
type InAppSink struct {
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// NewInAppSink creates the sink used by the notification fan-out.
func NewInAppSink(
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) service.NotificationSink {
	return &InAppSink{
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

// Deliver implements service.NotificationSink.
func (s *InAppSink) Deliver(ctx context.Context, job *entity.NotificationJob) error {
	notification := entity.NewNotificationFromJob(job)

	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return errors.Wrapf(err, "store notification for %s", job.RecipientID)
	}

	event := &service.PushEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		RecipientID:    notification.RecipientID,
		Title:          notification.Title,
		Message:        notification.Message,
		Link:           notification.Link,
		Data:           notification.Data,
	}

	if err := s.publisher.PublishPushEvent(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish push event",
			slog.String("notification_id", event.NotificationID),
			slog.String("recipient_id", event.RecipientID),
			slog.Any("error", err),
		)
	}

	return nil
}
