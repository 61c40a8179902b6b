package impl

import (
	"context"
	"log/slog"
	"strings"

	"lostfound/internal/domain/constants"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/domain/repository"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
	"lostfound/internal/proximity"
	"lostfound/internal/usecase"
)

type userService struct {
	logger   *slog.Logger
	userRepo repository.UserRepository
	cache    service.CandidateCache
}

// NewUserService creates a new user service instance
func NewUserService(logger *slog.Logger, userRepo repository.UserRepository, cache service.CandidateCache) usecase.UserUsecase {
	return &userService{
		logger:   logger,
		userRepo: userRepo,
		cache:    cache,
	}
}

func (s *userService) SyncProfile(ctx context.Context, author entity.Author, name string) (*entity.User, error) {
	user := &entity.User{
		ID:    author.ID,
		Email: author.Email,
		Name:  strings.TrimSpace(name),
	}

	if err := s.userRepo.UpsertUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to sync profile")
	}

	return s.GetProfile(ctx, author.ID)
}

// UpdateLocation stores the normalised coordinate so every reader parses the same text.
func (s *userService) UpdateLocation(ctx context.Context, author entity.Author, gps string) (*entity.User, error) {
	coordinate, ok := proximity.ParseCoordinate(gps)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidCoordinate)
	}

	err := s.userRepo.UpdateLocation(ctx, author.ID, coordinate.String())
	if errors.Is(err, repository.ErrUserNotFound) {
		if err := s.userRepo.UpsertUser(ctx, &entity.User{ID: author.ID, Email: author.Email}); err != nil {
			return nil, errors.Wrap(err, "failed to create profile")
		}
		err = s.userRepo.UpdateLocation(ctx, author.ID, coordinate.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	if err := s.cache.Delete(ctx, constants.CacheKeyLocatedUsers); err != nil {
		s.logger.WarnContext(ctx, "Candidate cache invalidation failed", slog.Any("error", err))
	}

	return s.GetProfile(ctx, author.ID)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
