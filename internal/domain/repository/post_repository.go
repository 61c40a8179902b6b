// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"lostfound/internal/domain/entity"
	"lostfound/internal/errors"
)

// Domain-specific errors for post persistence.
var (
	// ErrPostNotFound is returned when a post does not exist or the id is malformed.
	ErrPostNotFound = errors.New("post not found")
)

// PostFilter narrows a post listing. Zero values mean "any".
type PostFilter struct {
	Kind            entity.PostKind
	District        string
	Category        string
	IncludeResolved bool
}

// PostRepository defines the interface for post-related storage operations.
type PostRepository interface {
	// CreatePost persists a new post and assigns its ID and timestamps.
	CreatePost(ctx context.Context, post *entity.Post) error

	// FindPostByID retrieves a post by its hex id.
	FindPostByID(ctx context.Context, id string) (*entity.Post, error)

	// FindPosts returns one page of posts matching filter, newest first, and the total match count.
	FindPosts(ctx context.Context, filter PostFilter, skip, limit int64) ([]*entity.Post, int64, error)

	// FindPostCandidates returns every open post of the given kind, newest first, for proximity filtering.
	FindPostCandidates(ctx context.Context, kind entity.PostKind) ([]*entity.Post, error)

	// MarkResolved flags a post as resolved.
	MarkResolved(ctx context.Context, id string) error

	// DeletePost removes a post.
	DeletePost(ctx context.Context, id string) error
}
