package middleware

import (
	"log/slog"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle logs after the handler returns. Successful requests are logged at debug level
// unless env.debug is on; failures are always logged.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	status := responseStatus(res.Status, err)

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))
		if req.URL.RawQuery != "" {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
	}
	if author, ok := deliverycontext.GetAuthor(c); ok {
		fields = append(fields, slog.String("user_id", author.ID))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelDebug
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	case m.debug:
		level = slog.LevelInfo
	}

	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

// responseStatus predicts the status the error handler will write, since it runs after this middleware.
func responseStatus(written int, err error) int {
	if err == nil {
		return written
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr.HTTPCode()
	}
	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		return httpErr.Code
	}

	return 500
}
