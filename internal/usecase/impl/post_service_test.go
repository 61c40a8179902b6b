package impl

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"lostfound/config"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/fanout"
	"lostfound/internal/infra/cache"
	"lostfound/internal/infra/metrics"
	mockRepo "lostfound/internal/mocks/repository"
	mockSvc "lostfound/internal/mocks/service"
	"lostfound/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const kurunegala = "7.4863,80.3623"

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service  usecase.PostUsecase
	postRepo *mockRepo.MockPostRepository
	userRepo *mockRepo.MockUserRepository
	sink     *mockSvc.MockNotificationSink
	qrcode   *mockSvc.MockQRCodeService
}

func createTestPostService(t *testing.T) postServiceFixtures {
	postRepo := mockRepo.NewMockPostRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sink := mockSvc.NewMockNotificationSink(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	service := NewPostService(PostServiceParams{
		Config: &config.Config{
			Proximity: &config.ProximityConfig{
				NotifyRadiusKm:       10,
				LostListingRadiusKm:  5,
				FoundListingRadiusKm: 10,
				MaxRadiusKm:          100,
				PageSize:             20,
				PrefilterMultiplier:  1.5,
			},
		},
		Logger:   slog.New(slog.DiscardHandler),
		PostRepo: postRepo,
		UserRepo: userRepo,
		Cache:    cache.NewMemoryCache(time.Minute),
		Sink:     sink,
		QRCode:   qrcode,
		Policy:   fanout.NewPolicy(fanout.Config{}),
		Metrics:  metrics.New(),
	})

	return postServiceFixtures{
		service:  service,
		postRepo: postRepo,
		userRepo: userRepo,
		sink:     sink,
		qrcode:   qrcode,
	}
}

func alice() entity.Author {
	return entity.Author{ID: "uid-alice", Email: "alice@example.com"}
}

func foundWalletInput(gps string) *usecase.CreatePostInput {
	return &usecase.CreatePostInput{
		Kind:        entity.PostKindFound,
		Title:       "Black wallet",
		Description: "Found near the clock tower",
		Category:    "Wallets",
		District:    "Kurunegala",
		GPS:         gps,
	}
}

func expectStored(fx postServiceFixtures, ctx context.Context, id string) {
	fx.postRepo.EXPECT().
		CreatePost(ctx, mock.AnythingOfType("*entity.Post")).
		RunAndReturn(func(_ context.Context, post *entity.Post) error {
			post.ID = id

			return nil
		})
}

func TestPostService_CreatePost_NotifiesNearbyUsers(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	expectStored(fx, ctx, "post-1")
	fx.userRepo.EXPECT().
		FindLocatedUsers(ctx).
		Return([]*entity.User{
			{ID: "uid-alice", GPS: kurunegala},
			{ID: "uid-near", GPS: "7.4870,80.3650"},
			{ID: "uid-kandy", GPS: "7.2906,80.6337"},
			{ID: "uid-broken", GPS: "somewhere"},
		}, nil)

	var delivered []*entity.NotificationJob
	fx.sink.EXPECT().
		Deliver(mock.Anything, mock.AnythingOfType("*entity.NotificationJob")).
		Run(func(_ context.Context, job *entity.NotificationJob) { delivered = append(delivered, job) }).
		Return(nil).
		Once()

	output, err := fx.service.CreatePost(ctx, alice(), foundWalletInput(kurunegala))
	require.NoError(t, err)

	assert.Equal(t, "post-1", output.Post.ID)
	assert.Equal(t, "uid-alice", output.Post.AuthorID)
	assert.Equal(t, "alice@example.com", output.Post.AuthorEmail)
	assert.Equal(t, 1, output.Notifications.Attempted)
	assert.Equal(t, 1, output.Notifications.Succeeded)
	assert.Empty(t, output.Notifications.FailedIDs)

	require.Len(t, delivered, 1)
	job := delivered[0]
	assert.Equal(t, "uid-near", job.RecipientID)
	assert.Equal(t, entity.NotificationTypeItemFound, job.Type)
	assert.Equal(t, "/posts/post-1", job.Link)
	assert.Equal(t, entity.PriorityMedium, job.Priority)
	assert.Equal(t, "0.3 km away", job.Data["distance"])
	assert.Equal(t, "Kurunegala", job.Data["location"])
}

func TestPostService_CreatePost_ReportsSinkFailures(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	expectStored(fx, ctx, "post-2")
	fx.userRepo.EXPECT().
		FindLocatedUsers(ctx).
		Return([]*entity.User{
			{ID: "uid-near", GPS: "7.4870,80.3650"},
		}, nil)
	fx.sink.EXPECT().
		Deliver(mock.Anything, mock.AnythingOfType("*entity.NotificationJob")).
		Return(errors.New("inbox unavailable"))

	output, err := fx.service.CreatePost(ctx, alice(), foundWalletInput(kurunegala))
	require.NoError(t, err)
	assert.Equal(t, "post-2", output.Post.ID)
	assert.Equal(t, 1, output.Notifications.Attempted)
	assert.Equal(t, 0, output.Notifications.Succeeded)
	assert.Equal(t, []string{"uid-near"}, output.Notifications.FailedIDs)
}

func TestPostService_CreatePost_CandidateLoadFailureIsNotFatal(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	expectStored(fx, ctx, "post-3")
	fx.userRepo.EXPECT().
		FindLocatedUsers(ctx).
		Return(nil, errors.New("connection reset"))

	output, err := fx.service.CreatePost(ctx, alice(), foundWalletInput(kurunegala))
	require.NoError(t, err)
	assert.Equal(t, "post-3", output.Post.ID)
	assert.Equal(t, 0, output.Notifications.Attempted)
}

func TestPostService_CreatePost_WithoutLocationSkipsNotifications(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	expectStored(fx, ctx, "post-4")

	output, err := fx.service.CreatePost(ctx, alice(), foundWalletInput("not a coordinate"))
	require.NoError(t, err)
	assert.Equal(t, "post-4", output.Post.ID)
	assert.Equal(t, "not a coordinate", output.Post.GPS)
	assert.Equal(t, 0, output.Notifications.Attempted)
}

func TestPostService_CreatePost_InvalidKind(t *testing.T) {
	fx := createTestPostService(t)

	input := foundWalletInput(kurunegala)
	input.Kind = "stolen"

	output, err := fx.service.CreatePost(context.Background(), alice(), input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPostKind)
}

func TestPostService_CreatePost_StoreError(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		CreatePost(ctx, mock.AnythingOfType("*entity.Post")).
		Return(errors.New("write concern failed"))

	output, err := fx.service.CreatePost(ctx, alice(), foundWalletInput(kurunegala))
	require.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to create post")
}

func lostPostsAroundKurunegala() []*entity.Post {
	return []*entity.Post{
		{ID: "two-km", Kind: entity.PostKindLost, GPS: "7.5043,80.3623"},
		{ID: "half-km", Kind: entity.PostKindLost, GPS: "7.4908,80.3623"},
		{ID: "eight-km", Kind: entity.PostKindLost, GPS: "7.5583,80.3623"},
		{ID: "no-gps", Kind: entity.PostKindLost},
	}
}

func TestPostService_ListNearbyPosts_RanksByDistance(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPostCandidates(ctx, entity.PostKindLost).
		Return(lostPostsAroundKurunegala(), nil).
		Once()

	page, err := fx.service.ListNearbyPosts(ctx, &usecase.NearbyPostsQuery{
		Kind: entity.PostKindLost,
		GPS:  kurunegala,
		Page: 1,
	})
	require.NoError(t, err)

	assert.True(t, page.Nearby)
	assert.InDelta(t, 5.0, page.RadiusKm, 1e-9)
	assert.Equal(t, 2, page.TotalPosts)
	assert.Equal(t, 1, page.TotalPages)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, "half-km", page.Posts[0].ID)
	assert.Equal(t, "two-km", page.Posts[1].ID)
	require.NotNil(t, page.Posts[0].DistanceKm)
	assert.InDelta(t, 0.5, *page.Posts[0].DistanceKm, 0.01)

	// served from the candidate cache
	_, err = fx.service.ListNearbyPosts(ctx, &usecase.NearbyPostsQuery{
		Kind:     entity.PostKindLost,
		GPS:      kurunegala,
		RadiusKm: 10,
	})
	require.NoError(t, err)
}

func TestPostService_ListNearbyPosts_UsesStoredLocation(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, "uid-alice").
		Return(&entity.User{ID: "uid-alice", GPS: kurunegala}, nil)
	fx.postRepo.EXPECT().
		FindPostCandidates(ctx, entity.PostKindLost).
		Return(lostPostsAroundKurunegala(), nil)

	page, err := fx.service.ListNearbyPosts(ctx, &usecase.NearbyPostsQuery{
		UserID:   "uid-alice",
		Kind:     entity.PostKindLost,
		RadiusKm: 10,
	})
	require.NoError(t, err)
	assert.True(t, page.Nearby)
	assert.Equal(t, 3, page.TotalPosts)
}

func TestPostService_ListNearbyPosts_FallsBackWithoutCenter(t *testing.T) {
	tests := []struct {
		name  string
		query *usecase.NearbyPostsQuery
		setup func(fx postServiceFixtures, ctx context.Context)
	}{
		{
			name:  "blank gps",
			query: &usecase.NearbyPostsQuery{Kind: entity.PostKindFound, GPS: "  "},
		},
		{
			name:  "anonymous caller",
			query: &usecase.NearbyPostsQuery{Kind: entity.PostKindFound},
		},
		{
			name:  "user never shared a location",
			query: &usecase.NearbyPostsQuery{Kind: entity.PostKindFound, UserID: "uid-bob"},
			setup: func(fx postServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().
					FindUserByID(ctx, "uid-bob").
					Return(&entity.User{ID: "uid-bob"}, nil)
			},
		},
		{
			name:  "unknown user",
			query: &usecase.NearbyPostsQuery{Kind: entity.PostKindFound, UserID: "uid-ghost"},
			setup: func(fx postServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().
					FindUserByID(ctx, "uid-ghost").
					Return(nil, repository.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPostService(t)
			ctx := context.Background()
			if tt.setup != nil {
				tt.setup(fx, ctx)
			}

			fx.postRepo.EXPECT().
				FindPosts(ctx, repository.PostFilter{Kind: entity.PostKindFound}, int64(0), int64(20)).
				Return([]*entity.Post{{ID: "newest"}, {ID: "older"}}, int64(2), nil)

			page, err := fx.service.ListNearbyPosts(ctx, tt.query)
			require.NoError(t, err)
			assert.False(t, page.Nearby)
			assert.Equal(t, 2, page.TotalPosts)
			require.Len(t, page.Posts, 2)
			assert.Nil(t, page.Posts[0].DistanceKm)
		})
	}
}

func TestPostService_ListNearbyPosts_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name    string
		query   *usecase.NearbyPostsQuery
		wantErr error
	}{
		{"missing kind", &usecase.NearbyPostsQuery{GPS: kurunegala}, domainerrors.ErrInvalidPostKind},
		{"negative radius", &usecase.NearbyPostsQuery{Kind: entity.PostKindLost, GPS: kurunegala, RadiusKm: -1}, domainerrors.ErrInvalidRadius},
		{"radius above max", &usecase.NearbyPostsQuery{Kind: entity.PostKindLost, GPS: kurunegala, RadiusKm: 150}, domainerrors.ErrInvalidRadius},
		{"malformed gps", &usecase.NearbyPostsQuery{Kind: entity.PostKindFound, GPS: "7.48;80.36"}, domainerrors.ErrInvalidCoordinate},
		{"non-numeric gps", &usecase.NearbyPostsQuery{Kind: entity.PostKindFound, GPS: "north,east", UserID: "uid-alice"}, domainerrors.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPostService(t)

			page, err := fx.service.ListNearbyPosts(context.Background(), tt.query)
			require.Error(t, err)
			assert.Nil(t, page)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPostService_ListNearbyPosts_CandidateError(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPostCandidates(ctx, entity.PostKindFound).
		Return(nil, errors.New("cursor closed"))

	page, err := fx.service.ListNearbyPosts(ctx, &usecase.NearbyPostsQuery{Kind: entity.PostKindFound, GPS: kurunegala})
	require.Error(t, err)
	assert.Nil(t, page)
}

func TestPostService_ListPosts_Pages(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	filter := repository.PostFilter{Kind: entity.PostKindLost, District: "Gampaha", Category: "Phones"}
	fx.postRepo.EXPECT().
		FindPosts(ctx, filter, int64(40), int64(20)).
		Return([]*entity.Post{{ID: "p41"}}, int64(41), nil)

	page, err := fx.service.ListPosts(ctx, &usecase.PostListQuery{
		Kind:     entity.PostKindLost,
		District: " Gampaha ",
		Category: "Phones",
		Page:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 41, page.TotalPosts)
	require.Len(t, page.Posts, 1)
}

func TestPostService_ListPosts_PageBeyondRange(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPosts(ctx, repository.PostFilter{}, int64(math.MaxInt32-1)*20, int64(20)).
		Return([]*entity.Post{}, int64(41), nil)

	page, err := fx.service.ListPosts(ctx, &usecase.PostListQuery{Page: 1 << 62})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 1<<62, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 41, page.TotalPosts)
}

func TestPostService_GetPost_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPostByID(ctx, "missing").
		Return(nil, repository.ErrPostNotFound)

	post, err := fx.service.GetPost(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, post)
	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_ResolvePost(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPostByID(ctx, "post-1").
		Return(&entity.Post{ID: "post-1", Kind: entity.PostKindLost, AuthorID: "uid-alice"}, nil)
	fx.postRepo.EXPECT().
		MarkResolved(ctx, "post-1").
		Return(nil)

	post, err := fx.service.ResolvePost(ctx, alice(), "post-1")
	require.NoError(t, err)
	assert.True(t, post.Resolved)
}

func TestPostService_ResolvePost_AlreadyResolved(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPostByID(ctx, "post-1").
		Return(&entity.Post{ID: "post-1", AuthorID: "uid-alice", Resolved: true}, nil)

	post, err := fx.service.ResolvePost(ctx, alice(), "post-1")
	require.NoError(t, err)
	assert.True(t, post.Resolved)
}

func TestPostService_DeletePost_Forbidden(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPostByID(ctx, "post-1").
		Return(&entity.Post{ID: "post-1", AuthorID: "uid-bob"}, nil)

	err := fx.service.DeletePost(ctx, alice(), "post-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPostForbidden)
}

func TestPostService_DeletePost(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPostByID(ctx, "post-1").
		Return(&entity.Post{ID: "post-1", Kind: entity.PostKindFound, AuthorID: "uid-alice"}, nil)
	fx.postRepo.EXPECT().
		DeletePost(ctx, "post-1").
		Return(nil)

	require.NoError(t, fx.service.DeletePost(ctx, alice(), "post-1"))
}

func TestPostService_PostQRCode(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().
		FindPostByID(ctx, "post-1").
		Return(&entity.Post{ID: "post-1"}, nil)
	fx.qrcode.EXPECT().
		GeneratePostQR("post-1", "/posts/post-1").
		Return([]byte("png"), nil)

	png, err := fx.service.PostQRCode(ctx, "post-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
