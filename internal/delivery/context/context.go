// Package context carries request-scoped values (request id, logger, caller identity)
// between echo handlers and the layers below them.
package context

import (
	"context"
	"log/slog"

	"lostfound/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyAuthor    ContextKey = "author"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on c, or a fresh one when the
// request never went through the request id middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetAuthor stores the authenticated caller on both c and its request context.
func SetAuthor(c echo.Context, author entity.Author) {
	c.Set(string(KeyAuthor), author)
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), KeyAuthor, author)))
}

// GetAuthor returns the authenticated caller, if any.
func GetAuthor(c echo.Context) (entity.Author, bool) {
	author, ok := c.Get(string(KeyAuthor)).(entity.Author)
	if !ok || author.ID == "" {
		return entity.Author{}, false
	}

	return author, true
}

// AuthorFromContext is GetAuthor for code that only sees the request context.
func AuthorFromContext(ctx context.Context) (entity.Author, bool) {
	author, ok := ctx.Value(KeyAuthor).(entity.Author)
	if !ok || author.ID == "" {
		return entity.Author{}, false
	}

	return author, true
}
