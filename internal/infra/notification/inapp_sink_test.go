package notification

import (
	"context"
	"log/slog"
	"testing"

	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
	mockRepo "lostfound/internal/mocks/repository"
	mockSvc "lostfound/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleJob() *entity.NotificationJob {
	return &entity.NotificationJob{
		RecipientID: "uid-7",
		Type:        entity.NotificationTypeItemLost,
		Title:       "Lost item nearby: Phone",
		Message:     "Someone lost a Phone (Electronics) near Gampaha. Keep an eye out.",
		Data:        map[string]string{"postId": "p1", "distance": "1.2 km away"},
		Link:        "/posts/p1",
		Priority:    entity.PriorityMedium,
	}
}

func TestInAppSink_StoresThenPublishes(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	sink := NewInAppSink(repo, publisher, slog.New(slog.DiscardHandler))

	ctx := deliverycontext.WithRequestID(context.Background(), "req-9")

	var stored *entity.Notification
	repo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, n *entity.Notification) { stored = n }).
		Return(nil)

	publisher.EXPECT().
		PublishPushEvent(ctx, mock.MatchedBy(func(e *service.PushEvent) bool {
			return e.RecipientID == "uid-7" && e.RequestID == "req-9" && e.Link == "/posts/p1"
		})).
		Return(nil)

	require.NoError(t, sink.Deliver(ctx, sampleJob()))

	require.NotNil(t, stored)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.False(t, stored.IsRead)
	assert.Equal(t, entity.NotificationTypeItemLost, stored.Type)
	assert.Equal(t, "1.2 km away", stored.Data["distance"])
}

func TestInAppSink_StoreFailureFailsJob(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	sink := NewInAppSink(repo, publisher, slog.New(slog.DiscardHandler))

	repo.EXPECT().
		CreateNotification(mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	err := sink.Deliver(context.Background(), sampleJob())

	assert.ErrorContains(t, err, "uid-7")
	publisher.AssertNotCalled(t, "PublishPushEvent", mock.Anything, mock.Anything)
}

func TestInAppSink_PublishFailureIsNotFatal(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	sink := NewInAppSink(repo, publisher, slog.New(slog.DiscardHandler))

	repo.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(nil)
	publisher.EXPECT().PublishPushEvent(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	assert.NoError(t, sink.Deliver(context.Background(), sampleJob()))
}
