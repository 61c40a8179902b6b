package repository

import (
	"context"

	"lostfound/internal/domain/entity"
	"lostfound/internal/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when no user has the requested id.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository defines the interface for user-related storage operations.
type UserRepository interface {
	// UpsertUser creates the user or refreshes email and name of an existing one.
	UpsertUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by identity subject.
	FindUserByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateLocation stores the user's last known "lat,lng".
	UpdateLocation(ctx context.Context, id, gps string) error

	// FindLocatedUsers returns every user that has shared a location.
	FindLocatedUsers(ctx context.Context) ([]*entity.User, error)
}
