// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lostfound/internal/domain/entity"
	"lostfound/internal/fanout"
)

// --- Input DTOs ---

// CreatePostInput holds the author-supplied fields of a new post.
type CreatePostInput struct {
	Kind         entity.PostKind
	Title        string
	Description  string
	Category     string
	District     string
	GPS          string
	ImageURLs    []string
	ContactPhone string
}

// PostListQuery selects a non-geo listing page.
type PostListQuery struct {
	Kind     entity.PostKind
	District string
	Category string
	Page     int
}

// NearbyPostsQuery selects posts around a center. An empty GPS falls back to the
// caller's stored location; a zero RadiusKm uses the default radius for Kind.
type NearbyPostsQuery struct {
	UserID   string
	Kind     entity.PostKind
	GPS      string
	RadiusKm float64
	Page     int
}

// --- Output DTOs ---

// PostView is a post as listed, with its distance from the search center when known.
type PostView struct {
	*entity.Post
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// PostPage is one page of a listing.
type PostPage struct {
	Posts       []*PostView `json:"posts"`
	TotalPages  int         `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
	TotalPosts  int         `json:"totalPosts"`
	// Nearby is false when the listing was not filtered by distance.
	Nearby   bool    `json:"nearby"`
	RadiusKm float64 `json:"radiusKm,omitempty"`
}

// CreatePostOutput is the stored post and the outcome of notifying nearby users.
type CreatePostOutput struct {
	Post          *entity.Post  `json:"post"`
	Notifications fanout.Report `json:"notifications"`
}

// PostUsecase defines the post lifecycle and listing operations.
type PostUsecase interface {
	// CreatePost stores the post and notifies nearby users. Notification problems never fail the call.
	CreatePost(ctx context.Context, author entity.Author, input *CreatePostInput) (*CreatePostOutput, error)

	GetPost(ctx context.Context, id string) (*entity.Post, error)

	// ListPosts returns open posts newest first.
	ListPosts(ctx context.Context, query *PostListQuery) (*PostPage, error)

	// ListNearbyPosts returns open posts of one kind ordered by distance, or the plain listing
	// when no usable center is available.
	ListNearbyPosts(ctx context.Context, query *NearbyPostsQuery) (*PostPage, error)

	// ResolvePost lets the author mark the item as returned.
	ResolvePost(ctx context.Context, author entity.Author, id string) (*entity.Post, error)

	DeletePost(ctx context.Context, author entity.Author, id string) error

	// PostQRCode renders a PNG QR code linking to the post.
	PostQRCode(ctx context.Context, id string) ([]byte, error)
}
