// Package handler contains the HTTP handlers of the public API.
package handler

import (
	"log/slog"
	"net/http"

	"lostfound/internal/delivery/api/response"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	"lostfound/internal/errors"
	"lostfound/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PostHandlerParams holds dependencies for PostHandler, injected by Fx.
type PostHandlerParams struct {
	fx.In

	PostUC usecase.PostUsecase
	Logger *slog.Logger
}

// PostHandler serves the lost and found posts.
type PostHandler struct {
	postUC usecase.PostUsecase
	logger *slog.Logger
}

func NewPostHandler(params PostHandlerParams) *PostHandler {
	return &PostHandler{
		postUC: params.PostUC,
		logger: params.Logger,
	}
}

// CreatePostRequest is the body of POST /posts. GPS is free text: a post without a
// usable location is stored but notifies nobody.
type CreatePostRequest struct {
	Kind         string   `json:"kind" validate:"required,postkind"`
	Title        string   `json:"title" validate:"required,max=120"`
	Description  string   `json:"description" validate:"max=2000"`
	Category     string   `json:"category" validate:"required,max=60"`
	District     string   `json:"district" validate:"max=120"`
	GPS          string   `json:"gps" validate:"max=64"`
	ImageURLs    []string `json:"imageUrls" validate:"max=10,dive,url"`
	ContactPhone string   `json:"contactPhone" validate:"max=32"`
}

// ListPostsRequest holds the query of GET /posts.
type ListPostsRequest struct {
	Kind     string `query:"kind" validate:"omitempty,postkind"`
	District string `query:"district" validate:"max=120"`
	Category string `query:"category" validate:"max=60"`
	Page     int    `query:"page" validate:"min=0"`
}

// NearbyPostsRequest holds the query of GET /posts/nearby.
type NearbyPostsRequest struct {
	Kind     string  `query:"kind" validate:"required,postkind"`
	GPS      string  `query:"gps"`
	RadiusKm float64 `query:"radiusKm"`
	Page     int     `query:"page" validate:"min=0"`
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	output, err := h.postUC.CreatePost(c.Request().Context(), author, &usecase.CreatePostInput{
		Kind:         entity.PostKind(req.Kind),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		District:     req.District,
		GPS:          req.GPS,
		ImageURLs:    req.ImageURLs,
		ContactPhone: req.ContactPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

func (h *PostHandler) ListPosts(c echo.Context) error {
	var req ListPostsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid listing query")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	page, err := h.postUC.ListPosts(c.Request().Context(), &usecase.PostListQuery{
		Kind:     entity.PostKind(req.Kind),
		District: req.District,
		Category: req.Category,
		Page:     req.Page,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

// ListNearbyPosts ranks posts around ?gps, or around the caller's stored location when gps is absent.
func (h *PostHandler) ListNearbyPosts(c echo.Context) error {
	var req NearbyPostsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid nearby query")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	query := &usecase.NearbyPostsQuery{
		Kind:     entity.PostKind(req.Kind),
		GPS:      req.GPS,
		RadiusKm: req.RadiusKm,
		Page:     req.Page,
	}
	if author, ok := deliverycontext.GetAuthor(c); ok {
		query.UserID = author.ID
	}

	page, err := h.postUC.ListNearbyPosts(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postUC.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

func (h *PostHandler) ResolvePost(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	post, err := h.postUC.ResolvePost(c.Request().Context(), author, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	author, ok := deliverycontext.GetAuthor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Authentication required")
	}

	if err := h.postUC.DeletePost(c.Request().Context(), author, c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PostQRCode returns a PNG for printing on found-item notices.
func (h *PostHandler) PostQRCode(c echo.Context) error {
	png, err := h.postUC.PostQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
