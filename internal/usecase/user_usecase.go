package usecase

import (
	"context"

	"lostfound/internal/domain/entity"
)

// UserUsecase keeps the local profile of an identity in sync and tracks its location.
type UserUsecase interface {
	// SyncProfile creates or refreshes the profile of the calling identity.
	SyncProfile(ctx context.Context, author entity.Author, name string) (*entity.User, error)

	// UpdateLocation stores the caller's "lat,lng". The profile is created if missing.
	UpdateLocation(ctx context.Context, author entity.Author, gps string) (*entity.User, error)

	GetProfile(ctx context.Context, userID string) (*entity.User, error)
}
