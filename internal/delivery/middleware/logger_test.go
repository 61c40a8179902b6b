package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	domainerrors "lostfound/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var seen string
	e.GET("/", mw.Process(func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.NoContent(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_Generates(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
	e.GET("/", mw.Process(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestLoggerMiddleware_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	e.GET("/posts/:id", mw.Handle(func(c echo.Context) error {
		return errors.Wrap(domainerrors.ErrPostNotFound, "post not found")
	}))
	e.GET("/health", mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/posts/abc", nil))
	require.NotEmpty(t, buf.String())
	assert.Contains(t, buf.String(), `"status":404`)
	assert.Contains(t, buf.String(), `"route":"/posts/:id"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestResponseStatus(t *testing.T) {
	assert.Equal(t, http.StatusCreated, responseStatus(http.StatusCreated, nil))
	assert.Equal(t, http.StatusForbidden, responseStatus(http.StatusOK, domainerrors.ErrPostForbidden))
	assert.Equal(t, http.StatusMethodNotAllowed, responseStatus(http.StatusOK, echo.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusInternalServerError, responseStatus(http.StatusOK, errors.New("boom")))
}
