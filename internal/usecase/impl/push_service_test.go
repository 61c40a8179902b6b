package impl

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	"lostfound/internal/infra/metrics"
	mockRepo "lostfound/internal/mocks/repository"
	mockSvc "lostfound/internal/mocks/service"
	"lostfound/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushServiceFixtures holds all test dependencies for push service tests.
type pushServiceFixtures struct {
	service          usecase.PushUsecase
	pushSvc          *mockSvc.MockPushService
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	txManager        *mockRepo.MockTransactionManager
}

func createTestPushService(t *testing.T) pushServiceFixtures {
	pushSvc := mockSvc.NewMockPushService(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	return pushServiceFixtures{
		service:          NewPushService(slog.New(slog.DiscardHandler), pushSvc, deviceRepo, notificationRepo, txManager, metrics.New()),
		pushSvc:          pushSvc,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
	}
}

// expectTransaction runs the transactional callback against the fixture repositories.
func (fx pushServiceFixtures) expectTransaction(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDeviceRepository().Return(fx.deviceRepo).Maybe()
	factory.EXPECT().NewNotificationRepository().Return(fx.notificationRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

func pushEvent(notificationID uuid.UUID) *service.PushEvent {
	return &service.PushEvent{
		NotificationID: notificationID.String(),
		RecipientID:    "uid-near",
		Title:          "Found item nearby: Black wallet",
		Message:        "Someone found a Black wallet (Wallets) near Kurunegala. Is it yours?",
		Link:           "/posts/post-1",
		Data:           map[string]string{"postId": "post-1"},
	}
}

func (fx pushServiceFixtures) expectStoredNotification(ctx context.Context, notificationID uuid.UUID) {
	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, RecipientID: "uid-near"}, nil).
		Once()
}

func devicesWithTokens(count int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, count)
	for idx := range count {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   "uid-near",
			FCMToken: fmt.Sprintf("token-%d", idx),
			IsActive: true,
		})
	}

	return devices
}

func TestPushService_DeliverPush_DeactivatesRejectedTokens(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	fx.expectStoredNotification(ctx, notificationID)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, "uid-near").
		Return(devicesWithTokens(3), nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1", "token-2"}, "Found item nearby: Black wallet", mock.Anything,
			mock.MatchedBy(func(data map[string]string) bool {
				return data["postId"] == "post-1" && data["link"] == "/posts/post-1" && data["notificationId"] == notificationID.String()
			})).
		Return(2, 1, []string{"token-1"}, nil)
	fx.expectTransaction(t)
	fx.deviceRepo.EXPECT().
		DeactivateTokens(ctx, []string{"token-1"}).
		Return(int64(1), nil)
	fx.notificationRepo.EXPECT().
		UpdatePushStatus(ctx, notificationID, 2, 1).
		Return(nil)

	result, err := fx.service.DeliverPush(ctx, pushEvent(notificationID))
	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Devices: 3, Sent: 2, Failed: 1, RevokedTokens: 1}, result)
}

func TestPushService_DeliverPush_Batches(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	fx.expectStoredNotification(ctx, notificationID)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, "uid-near").
		Return(devicesWithTokens(501), nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), mock.Anything, mock.Anything, mock.Anything).
		Return(500, 0, nil, nil).
		Once()
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-500"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).
		Once()
	fx.expectTransaction(t)
	fx.notificationRepo.EXPECT().
		UpdatePushStatus(ctx, notificationID, 500, 1).
		Return(nil)

	result, err := fx.service.DeliverPush(ctx, pushEvent(notificationID))
	require.NoError(t, err)
	assert.Equal(t, 500, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestPushService_DeliverPush_NoDevices(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	fx.expectStoredNotification(ctx, notificationID)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, "uid-near").
		Return([]*entity.UserDevice{}, nil)

	result, err := fx.service.DeliverPush(ctx, pushEvent(notificationID))
	require.NoError(t, err)
	assert.Zero(t, result.Devices)
}

func TestPushService_DeliverPush_DeviceLookupIsRetryable(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	fx.expectStoredNotification(ctx, notificationID)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, "uid-near").
		Return(nil, errors.New("connection refused"))

	result, err := fx.service.DeliverPush(ctx, pushEvent(notificationID))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, usecase.IsRetryable(err))
}

func TestPushService_DeliverPush_InvalidEvent(t *testing.T) {
	fx := createTestPushService(t)

	event := pushEvent(uuid.New())
	event.NotificationID = "not-a-uuid"

	result, err := fx.service.DeliverPush(context.Background(), event)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, usecase.ErrInvalidPushEvent)
	assert.False(t, usecase.IsRetryable(err))
}

func TestPushService_DeliverPush_BookkeepingFailureIsNotRetried(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	fx.expectStoredNotification(ctx, notificationID)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, "uid-near").
		Return(devicesWithTokens(1), nil)
	fx.pushSvc.EXPECT().
		SendBatchNotification(ctx, []string{"token-0"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(errors.New("failed to begin transaction"))

	result, err := fx.service.DeliverPush(ctx, pushEvent(notificationID))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestPushService_DeliverPush_SkipsRedelivery(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		FindNotificationByID(ctx, notificationID).
		Return(&entity.Notification{ID: notificationID, RecipientID: "uid-near", PushSent: 2}, nil)

	result, err := fx.service.DeliverPush(ctx, pushEvent(notificationID))
	require.NoError(t, err)
	assert.True(t, result.Duplicate)
	assert.Equal(t, 2, result.Sent)
}

func TestPushService_DeliverPush_NotificationLookup(t *testing.T) {
	tests := []struct {
		name          string
		notification  *entity.Notification
		err           error
		wantRetryable bool
	}{
		{
			name: "deleted notification is dropped",
			err:  repository.ErrNotificationNotFound,
		},
		{
			name:         "recipient mismatch is dropped",
			notification: &entity.Notification{RecipientID: "uid-other"},
		},
		{
			name:          "store outage is retried",
			err:           errors.New("connection refused"),
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushService(t)
			ctx := context.Background()
			notificationID := uuid.New()

			fx.notificationRepo.EXPECT().
				FindNotificationByID(ctx, notificationID).
				Return(tt.notification, tt.err)

			result, err := fx.service.DeliverPush(ctx, pushEvent(notificationID))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.wantRetryable, usecase.IsRetryable(err))
			if !tt.wantRetryable {
				assert.ErrorIs(t, err, usecase.ErrInvalidPushEvent)
			}
		})
	}
}
