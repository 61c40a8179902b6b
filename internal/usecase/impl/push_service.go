package impl

import (
	"context"
	"log/slog"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
	"lostfound/internal/infra/metrics"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
)

// pushBatchSize is the provider's multicast limit.
const pushBatchSize = 500

type pushService struct {
	logger           *slog.Logger
	pushSvc          service.PushService
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	metrics          *metrics.Metrics
}

// NewPushService creates a new push delivery service instance
func NewPushService(
	logger *slog.Logger,
	pushSvc service.PushService,
	deviceRepo repository.DeviceRepository,
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	metrics *metrics.Metrics,
) usecase.PushUsecase {
	return &pushService{
		logger:           logger,
		pushSvc:          pushSvc,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		metrics:          metrics,
	}
}

func (s *pushService) DeliverPush(ctx context.Context, event *service.PushEvent) (*usecase.PushResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("notification_id", event.NotificationID),
		slog.String("recipient_id", event.RecipientID),
	)

	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrInvalidPushEvent, "notification id %q", event.NotificationID)
	}
	if event.RecipientID == "" {
		return nil, errors.Wrap(usecase.ErrInvalidPushEvent, "missing recipient")
	}

	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, errors.Wrapf(usecase.ErrInvalidPushEvent, "notification %s not found", event.NotificationID)
		}

		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to find notification"))
	}
	if notification.RecipientID != event.RecipientID {
		return nil, errors.Wrap(usecase.ErrInvalidPushEvent, "recipient does not own notification")
	}
	// Pub/Sub delivers at least once.
	if notification.PushSent+notification.PushFailed > 0 {
		logger.InfoContext(ctx, "Push already delivered, skipping redelivery")

		return &usecase.PushResult{Sent: notification.PushSent, Failed: notification.PushFailed, Duplicate: true}, nil
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, event.RecipientID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to find devices"))
	}

	result := &usecase.PushResult{Devices: len(devices)}
	if len(devices) == 0 {
		logger.InfoContext(ctx, "Recipient has no active devices")

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := make(map[string]string, len(event.Data)+2)
	for key, value := range event.Data {
		data[key] = value
	}
	data["notificationId"] = event.NotificationID
	data["link"] = event.Link

	var invalidTokens []string
	for idx := 0; idx < len(tokens); idx += pushBatchSize {
		batch := tokens[idx:min(idx+pushBatchSize, len(tokens))]

		sent, failed, batchInvalid, sendErr := s.pushSvc.SendBatchNotification(ctx, batch, event.Title, event.Message, data)
		if sendErr != nil {
			logger.ErrorContext(ctx, "Failed to send push batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", sendErr),
			)
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	// Pushes already went out, so a failed bookkeeping write is logged rather than redelivered.
	if err := s.recordOutcome(ctx, notificationID, invalidTokens, result); err != nil {
		logger.WarnContext(ctx, "Failed to record push outcome", slog.Any("error", err))
	}

	s.metrics.ObservePush(result.Sent, result.Failed, result.RevokedTokens)
	logger.InfoContext(ctx, "Push delivery completed",
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
		slog.Int("revoked_tokens", result.RevokedTokens),
	)

	return result, nil
}

// recordOutcome deactivates rejected tokens and stores the push counters in one transaction.
func (s *pushService) recordOutcome(ctx context.Context, notificationID uuid.UUID, invalidTokens []string, result *usecase.PushResult) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if len(invalidTokens) > 0 {
			revoked, err := repoFactory.NewDeviceRepository().DeactivateTokens(ctx, invalidTokens)
			if err != nil {
				return errors.Wrap(err, "failed to deactivate rejected tokens")
			}
			result.RevokedTokens = int(revoked)
		}

		return errors.Wrap(
			repoFactory.NewNotificationRepository().UpdatePushStatus(ctx, notificationID, result.Sent, result.Failed),
			"failed to update push status",
		)
	})
}
