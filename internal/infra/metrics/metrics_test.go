package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lostfound/internal/fanout"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveFanout(t *testing.T) {
	m := New()

	m.ObserveFanout(fanout.Report{Attempted: 5, Succeeded: 4, FailedIDs: []string{"id3"}}, 120*time.Millisecond)
	m.ObserveFanout(fanout.Report{Attempted: 1, Abandoned: 2, TimedOut: true, FailedIDs: []string{}}, 3*time.Second)

	assert.InDelta(t, 4, testutil.ToFloat64(m.FanoutJobsTotal.WithLabelValues("succeeded")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FanoutJobsTotal.WithLabelValues("failed")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.FanoutJobsTotal.WithLabelValues("abandoned")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FanoutTimeoutsTotal), 0)
}

func TestObserveNearby(t *testing.T) {
	m := New()

	m.ObserveNearby("lost", true)
	m.ObserveNearby("lost", false)
	m.ObserveNearby("lost", false)

	assert.InDelta(t, 1, testutil.ToFloat64(m.NearbyQueriesTotal.WithLabelValues("lost", "geo")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.NearbyQueriesTotal.WithLabelValues("lost", "fallback")), 0)
}

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/posts/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/posts/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/posts/:id", "204")), 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "lostfound_http_requests_total"))
}

func TestObservePublish(t *testing.T) {
	m := New()

	m.ObservePublish("google", nil)
	m.ObservePublish("google", assert.AnError)
	m.ObservePublish("local", nil)

	assert.InDelta(t, 1, testutil.ToFloat64(m.PushEventsPublished.WithLabelValues("google", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PushEventsPublished.WithLabelValues("google", "error")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PushEventsPublished.WithLabelValues("local", "ok")), 0)
}
