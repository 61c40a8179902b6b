package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
	"lostfound/internal/fanout"
	"lostfound/internal/infra/metrics"
	"lostfound/internal/proximity"
	"lostfound/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultCandidateTTL = time.Minute
	// maxSkipPage bounds the store offset; later pages are empty either way.
	maxSkipPage = math.MaxInt32
)

// PostServiceParams holds the dependencies of the post service.
type PostServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	PostRepo repository.PostRepository
	UserRepo repository.UserRepository
	Cache    service.CandidateCache
	Sink     service.NotificationSink
	QRCode   service.QRCodeService
	Policy   *fanout.Policy
	Metrics  *metrics.Metrics
}

type postService struct {
	proximity *config.ProximityConfig
	cacheTTL  time.Duration
	logger    *slog.Logger
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	cache     service.CandidateCache
	sink      service.NotificationSink
	qrcode    service.QRCodeService
	policy    *fanout.Policy
	metrics   *metrics.Metrics
}

// NewPostService creates a new post service instance
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	cacheTTL := defaultCandidateTTL
	if params.Config.Redis != nil && params.Config.Redis.TTL > 0 {
		cacheTTL = params.Config.Redis.TTL
	}

	return &postService{
		proximity: params.Config.Proximity,
		cacheTTL:  cacheTTL,
		logger:    params.Logger,
		postRepo:  params.PostRepo,
		userRepo:  params.UserRepo,
		cache:     params.Cache,
		sink:      params.Sink,
		qrcode:    params.QRCode,
		policy:    params.Policy,
		metrics:   params.Metrics,
	}
}

// CreatePost stores the post first; the nearby fan-out runs afterwards and its outcome is only reported.
func (s *postService) CreatePost(ctx context.Context, author entity.Author, input *usecase.CreatePostInput) (*usecase.CreatePostOutput, error) {
	if !input.Kind.Valid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidPostKind)
	}

	post := &entity.Post{
		Kind:         input.Kind,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		Category:     strings.TrimSpace(input.Category),
		District:     strings.TrimSpace(input.District),
		GPS:          strings.TrimSpace(input.GPS),
		ImageURLs:    input.ImageURLs,
		ContactPhone: strings.TrimSpace(input.ContactPhone),
		AuthorID:     author.ID,
		AuthorEmail:  author.Email,
	}
	if post.ImageURLs == nil {
		post.ImageURLs = []string{}
	}

	if err := s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}
	s.invalidate(ctx, constants.CacheKeyPostsPrefix+string(post.Kind))

	return &usecase.CreatePostOutput{
		Post:          post,
		Notifications: s.notifyNearby(ctx, post, author),
	}, nil
}

func (s *postService) notifyNearby(ctx context.Context, post *entity.Post, author entity.Author) fanout.Report {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("post_id", post.ID),
		slog.String("kind", string(post.Kind)),
	)

	center, ok := proximity.ParseCoordinate(post.GPS)
	if !ok {
		logger.InfoContext(ctx, "Post has no usable location, skipping nearby notifications")

		return fanout.Report{FailedIDs: []string{}}
	}

	users, err := s.locatedUsers(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load notification candidates", slog.Any("error", err))

		return fanout.Report{FailedIDs: []string{}}
	}

	nearby, err := proximity.FindWithinRadius(
		proximity.ExcludeSelf(users, author.ID),
		center,
		s.proximity.NotifyRadiusKm,
		proximity.WithBoundingBoxPrefilter(s.proximity.PrefilterMultiplier),
	)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to find nearby users", slog.Any("error", err))

		return fanout.Report{FailedIDs: []string{}}
	}

	started := time.Now()
	report := fanout.BuildAndDispatch(ctx, s.policy, post, author, nearby, s.sink)
	s.metrics.ObserveFanout(report, time.Since(started))

	attrs := []any{
		slog.Int("attempted", report.Attempted),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", len(report.FailedIDs)),
		slog.Int("abandoned", report.Abandoned),
		slog.Bool("timed_out", report.TimedOut),
	}
	if len(report.FailedIDs) > 0 || report.TimedOut {
		logger.WarnContext(ctx, "Nearby notifications partially delivered", attrs...)
	} else {
		logger.InfoContext(ctx, "Nearby notifications delivered", attrs...)
	}

	return report
}

func (s *postService) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	post, err := s.postRepo.FindPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, query *usecase.PostListQuery) (*usecase.PostPage, error) {
	if query.Kind != "" && !query.Kind.Valid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidPostKind)
	}

	page := max(query.Page, 1)
	pageSize := s.proximity.PageSize
	filter := repository.PostFilter{
		Kind:     query.Kind,
		District: strings.TrimSpace(query.District),
		Category: strings.TrimSpace(query.Category),
	}

	skip := int64(min(page, maxSkipPage)-1) * int64(pageSize)
	posts, total, err := s.postRepo.FindPosts(ctx, filter, skip, int64(pageSize))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	views := make([]*usecase.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, &usecase.PostView{Post: post})
	}

	return &usecase.PostPage{
		Posts:       views,
		TotalPages:  proximity.TotalPages(int(total), pageSize),
		CurrentPage: page,
		TotalPosts:  int(total),
	}, nil
}

// ListNearbyPosts ranks open posts of one kind by distance. A malformed explicit gps is
// rejected; without a stored location it degrades to the newest-first listing.
func (s *postService) ListNearbyPosts(ctx context.Context, query *usecase.NearbyPostsQuery) (*usecase.PostPage, error) {
	if !query.Kind.Valid() {
		return nil, errors.WithStack(domainerrors.ErrInvalidPostKind)
	}

	radiusKm, err := s.listingRadius(query.Kind, query.RadiusKm)
	if err != nil {
		return nil, err
	}

	center, ok, err := s.searchCenter(ctx, query)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.metrics.ObserveNearby(string(query.Kind), false)

		return s.ListPosts(ctx, &usecase.PostListQuery{Kind: query.Kind, Page: query.Page})
	}

	candidates, err := s.postCandidates(ctx, query.Kind)
	if err != nil {
		return nil, err
	}

	nearby, err := proximity.FindWithinRadius(
		candidates,
		center,
		radiusKm,
		proximity.WithBoundingBoxPrefilter(s.proximity.PrefilterMultiplier),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank nearby posts")
	}
	s.metrics.ObserveNearby(string(query.Kind), true)

	paged := proximity.Paginate(nearby, query.Page, s.proximity.PageSize)
	views := make([]*usecase.PostView, 0, len(paged.Items))
	for _, result := range paged.Items {
		distance := result.DistanceKm
		views = append(views, &usecase.PostView{Post: result.Item, DistanceKm: &distance})
	}

	return &usecase.PostPage{
		Posts:       views,
		TotalPages:  paged.TotalPages,
		CurrentPage: paged.Page,
		TotalPosts:  paged.TotalItems,
		Nearby:      true,
		RadiusKm:    radiusKm,
	}, nil
}

func (s *postService) listingRadius(kind entity.PostKind, requested float64) (float64, error) {
	if requested == 0 {
		if kind == entity.PostKindLost {
			return s.proximity.LostListingRadiusKm, nil
		}

		return s.proximity.FoundListingRadiusKm, nil
	}

	if !(requested > 0 && requested <= s.proximity.MaxRadiusKm) {
		return 0, errors.WithStack(domainerrors.ErrInvalidRadius.WithDetails("radius must be within (0, max]"))
	}

	return requested, nil
}

// searchCenter prefers the explicit coordinate and falls back to the caller's stored location.
func (s *postService) searchCenter(ctx context.Context, query *usecase.NearbyPostsQuery) (proximity.Coordinate, bool, error) {
	if strings.TrimSpace(query.GPS) != "" {
		center, ok := proximity.ParseCoordinate(query.GPS)
		if !ok {
			return proximity.Coordinate{}, false, errors.WithStack(domainerrors.ErrInvalidCoordinate)
		}

		return center, true, nil
	}
	if query.UserID == "" {
		return proximity.Coordinate{}, false, nil
	}

	user, err := s.userRepo.FindUserByID(ctx, query.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "Failed to load stored location",
				slog.String("user_id", query.UserID),
				slog.Any("error", err),
			)
		}

		return proximity.Coordinate{}, false, nil
	}

	center, ok := proximity.ParseCoordinate(user.GPS)

	return center, ok, nil
}

func (s *postService) ResolvePost(ctx context.Context, author entity.Author, id string) (*entity.Post, error) {
	post, err := s.ownedPost(ctx, author, id)
	if err != nil {
		return nil, err
	}

	if !post.Resolved {
		if err := s.postRepo.MarkResolved(ctx, id); err != nil {
			return nil, errors.Wrap(err, "failed to resolve post")
		}
		post.Resolved = true
		post.UpdatedAt = time.Now()
		s.invalidate(ctx, constants.CacheKeyPostsPrefix+string(post.Kind))
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, author entity.Author, id string) error {
	post, err := s.ownedPost(ctx, author, id)
	if err != nil {
		return err
	}

	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
		}

		return errors.Wrap(err, "failed to delete post")
	}
	s.invalidate(ctx, constants.CacheKeyPostsPrefix+string(post.Kind))

	return nil
}

func (s *postService) PostQRCode(ctx context.Context, id string) ([]byte, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GeneratePostQR(post.ID, s.policy.Link(post.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

func (s *postService) ownedPost(ctx context.Context, author entity.Author, id string) (*entity.Post, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != author.ID {
		return nil, errors.Wrap(domainerrors.ErrPostForbidden, "post does not belong to user")
	}

	return post, nil
}

func (s *postService) locatedUsers(ctx context.Context) ([]*entity.User, error) {
	return readThrough(ctx, s, "users", constants.CacheKeyLocatedUsers, s.userRepo.FindLocatedUsers)
}

func (s *postService) postCandidates(ctx context.Context, kind entity.PostKind) ([]*entity.Post, error) {
	return readThrough(ctx, s, "posts", constants.CacheKeyPostsPrefix+string(kind), func(ctx context.Context) ([]*entity.Post, error) {
		return s.postRepo.FindPostCandidates(ctx, kind)
	})
}

// readThrough serves a candidate list from the cache, loading and storing it on a miss.
// Cache failures are logged and never hide the store.
func readThrough[T any](ctx context.Context, s *postService, set, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var items []T
	hit, err := s.cache.Get(ctx, key, &items)
	if err != nil {
		s.logger.WarnContext(ctx, "Candidate cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	s.metrics.ObserveCache(set, hit)
	if hit {
		return items, nil
	}

	items, err = load(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s candidates", set)
	}

	if err := s.cache.Set(ctx, key, items, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "Candidate cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return items, nil
}

func (s *postService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "Candidate cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}
