package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "lostfound/internal/delivery/api/middleware"
	"lostfound/internal/delivery/api/response"
	"lostfound/internal/delivery/api/validator"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/domain/entity"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/errors"
	"lostfound/internal/fanout"
	mockUsecase "lostfound/internal/mocks/usecase"
	"lostfound/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testAuthor = entity.Author{ID: "uid-author", Email: "author@example.com"}

// newTestEcho mirrors the API server setup without metrics or real auth.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(slog.New(slog.DiscardHandler)).HandleHTTPError

	return e
}

func asAuthor(author entity.Author) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetAuthor(c, author)
			return next(c)
		}
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body struct {
		Error *response.ErrorInfo `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestPostHandler_CreatePost(t *testing.T) {
	postUC := mockUsecase.NewMockPostUsecase(t)
	h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.POST("/posts", h.CreatePost, asAuthor(testAuthor))

	postUC.EXPECT().
		CreatePost(mock.Anything, testAuthor, mock.MatchedBy(func(in *usecase.CreatePostInput) bool {
			return in.Kind == entity.PostKindFound && in.Title == "Black wallet" && in.GPS == "7.4863,80.3623"
		})).
		Return(&usecase.CreatePostOutput{
			Post:          &entity.Post{ID: "p1", Kind: entity.PostKindFound, Title: "Black wallet"},
			Notifications: fanout.Report{Attempted: 2, Succeeded: 2, FailedIDs: []string{}},
		}, nil).
		Once()

	body := `{"kind":"found","title":"Black wallet","category":"Wallets","gps":"7.4863,80.3623"}`
	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"p1"`)
	assert.Contains(t, rec.Body.String(), `"attempted":2`)
}

func TestPostHandler_CreatePost_ValidationFailed(t *testing.T) {
	postUC := mockUsecase.NewMockPostUsecase(t)
	h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.POST("/posts", h.CreatePost, asAuthor(testAuthor))

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{"kind":"stolen","category":"Wallets"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	errInfo := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", errInfo.Code)
	assert.Contains(t, rec.Body.String(), `"field":"kind"`)
	assert.Contains(t, rec.Body.String(), `"field":"title"`)
}

func TestPostHandler_CreatePost_RequiresAuthor(t *testing.T) {
	postUC := mockUsecase.NewMockPostUsecase(t)
	h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.POST("/posts", h.CreatePost)

	req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPostHandler_ListNearbyPosts(t *testing.T) {
	tests := []struct {
		name       string
		author     *entity.Author
		wantUserID string
	}{
		{name: "anonymous caller", wantUserID: ""},
		{name: "identified caller", author: &testAuthor, wantUserID: testAuthor.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postUC := mockUsecase.NewMockPostUsecase(t)
			h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

			e := newTestEcho()
			var mw []echo.MiddlewareFunc
			if tt.author != nil {
				mw = append(mw, asAuthor(*tt.author))
			}
			e.GET("/posts/nearby", h.ListNearbyPosts, mw...)

			postUC.EXPECT().
				ListNearbyPosts(mock.Anything, &usecase.NearbyPostsQuery{
					UserID:   tt.wantUserID,
					Kind:     entity.PostKindLost,
					GPS:      "7.4863,80.3623",
					RadiusKm: 2.5,
					Page:     2,
				}).
				Return(&usecase.PostPage{Posts: []*usecase.PostView{}, CurrentPage: 2, Nearby: true, RadiusKm: 2.5}, nil).
				Once()

			req := httptest.NewRequest(http.MethodGet, "/posts/nearby?kind=lost&gps=7.4863,80.3623&radiusKm=2.5&page=2", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"nearby":true`)
		})
	}
}

func TestPostHandler_ListNearbyPosts_MalformedGPS(t *testing.T) {
	postUC := mockUsecase.NewMockPostUsecase(t)
	h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.GET("/posts/nearby", h.ListNearbyPosts)

	postUC.EXPECT().
		ListNearbyPosts(mock.Anything, &usecase.NearbyPostsQuery{
			Kind:     entity.PostKindFound,
			GPS:      "north,east",
			RadiusKm: 50,
		}).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCoordinate)).
		Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/nearby?kind=found&gps=north,east&radiusKm=50", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_COORDINATE", decodeError(t, rec).Code)
}

func TestPostHandler_ListNearbyPosts_KindRequired(t *testing.T) {
	postUC := mockUsecase.NewMockPostUsecase(t)
	h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.GET("/posts/nearby", h.ListNearbyPosts)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/nearby?gps=1,2", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestPostHandler_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "not found",
			err:      errors.Wrap(domainerrors.ErrPostNotFound, "find post"),
			wantCode: http.StatusNotFound,
			wantBody: "POST_NOT_FOUND",
		},
		{
			name:     "forbidden",
			err:      errors.Wrap(domainerrors.ErrPostForbidden, "resolve post"),
			wantCode: http.StatusForbidden,
			wantBody: "POST_FORBIDDEN",
		},
		{
			name:     "unexpected",
			err:      errors.New("mongo: connection reset"),
			wantCode: http.StatusInternalServerError,
			wantBody: "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postUC := mockUsecase.NewMockPostUsecase(t)
			h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

			e := newTestEcho()
			e.POST("/posts/:id/resolve", h.ResolvePost, asAuthor(testAuthor))

			postUC.EXPECT().ResolvePost(mock.Anything, testAuthor, "p1").Return(nil, tt.err).Once()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/posts/p1/resolve", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, rec).Code)
			assert.NotContains(t, rec.Body.String(), "mongo")
		})
	}
}

func TestPostHandler_DeletePost(t *testing.T) {
	postUC := mockUsecase.NewMockPostUsecase(t)
	h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.DELETE("/posts/:id", h.DeletePost, asAuthor(testAuthor))

	postUC.EXPECT().DeletePost(mock.Anything, testAuthor, "p1").Return(nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/posts/p1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPostHandler_PostQRCode(t *testing.T) {
	postUC := mockUsecase.NewMockPostUsecase(t)
	h := NewPostHandler(PostHandlerParams{PostUC: postUC, Logger: slog.New(slog.DiscardHandler)})

	e := newTestEcho()
	e.GET("/posts/:id/qr", h.PostQRCode)

	png := []byte{0x89, 'P', 'N', 'G'}
	postUC.EXPECT().PostQRCode(mock.Anything, "p1").Return(png, nil).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/p1/qr", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
