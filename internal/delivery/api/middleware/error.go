// Package middleware holds API-only echo middleware: authentication and error rendering.
package middleware

import (
	"log/slog"

	"lostfound/internal/delivery/api/response"
	deliverycontext "lostfound/internal/delivery/context"
	domainerrors "lostfound/internal/domain/errors"
	"lostfound/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware renders every error returned by a handler.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is echo's HTTPErrorHandler. Domain errors keep their status and code;
// anything unrecognised becomes a logged 500 without internal detail.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= 500 {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
