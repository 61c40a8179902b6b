package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "lostfound/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reuse  bool
	}{
		{name: "reuses caller id", header: "req-from-api", reuse: true},
		{name: "mints id when missing"},
		{name: "replaces oversized id", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "replaces id with spaces", header: "req id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)

			var fromCtx string
			e.GET("/", func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, fromCtx)
			if tt.reuse {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}
