package impl

import (
	"context"
	"testing"

	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	mockRepo "lostfound/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		pageSize    int
		wantLimit   int
		wantOffset  int
		wantPages   int
		wantCurrent int
	}{
		{name: "defaults", page: 0, pageSize: 0, wantLimit: 20, wantOffset: 0, wantPages: 3, wantCurrent: 1},
		{name: "second page", page: 2, pageSize: 10, wantLimit: 10, wantOffset: 10, wantPages: 5, wantCurrent: 2},
		{name: "page size capped", page: 1, pageSize: 500, wantLimit: 100, wantOffset: 0, wantPages: 1, wantCurrent: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockNotificationRepository(t)
			service := NewNotificationService(repo)
			ctx := context.Background()

			repo.EXPECT().
				FindNotificationsByRecipient(ctx, "uid-alice", tt.wantLimit, tt.wantOffset).
				Return([]*entity.Notification{{ID: uuid.New()}}, int64(45), nil)

			page, err := service.ListNotifications(ctx, "uid-alice", tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, 45, page.Total)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantCurrent, page.CurrentPage)
			assert.Len(t, page.Notifications, 1)
		})
	}
}

func TestNotificationService_UnreadCount(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(repo)
	ctx := context.Background()

	repo.EXPECT().CountUnread(ctx, "uid-alice").Return(int64(3), nil)

	count, err := service.UnreadCount(ctx, "uid-alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(repo)
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().MarkRead(ctx, "uid-alice", id).Return(repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, "uid-alice", id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(repo)
	ctx := context.Background()

	repo.EXPECT().MarkAllRead(ctx, "uid-alice").Return(int64(0), errors.New("deadlock detected"))

	updated, err := service.MarkAllRead(ctx, "uid-alice")
	require.Error(t, err)
	assert.Zero(t, updated)
	assert.Contains(t, err.Error(), "failed to mark notifications as read")
}
