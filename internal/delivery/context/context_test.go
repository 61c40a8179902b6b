package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostfound/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestAuthor(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAuthor(c)
	assert.False(t, ok)

	SetAuthor(c, entity.Author{ID: "uid-alice", Email: "alice@example.com"})

	author, ok := GetAuthor(c)
	require.True(t, ok)
	assert.Equal(t, "uid-alice", author.ID)

	fromCtx, ok := AuthorFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, author, fromCtx)
}
