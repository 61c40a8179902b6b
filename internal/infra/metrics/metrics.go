// Package metrics exposes Prometheus collectors for the API and the push worker.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"lostfound/internal/errors"
	"lostfound/internal/fanout"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "lostfound"

// Metrics holds all collectors. Each instance owns its registry so tests can build several.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	FanoutJobsTotal      *prometheus.CounterVec
	FanoutDuration       prometheus.Histogram
	FanoutTimeoutsTotal  prometheus.Counter
	NearbyQueriesTotal   *prometheus.CounterVec
	CandidateCacheTotal  *prometheus.CounterVec
	PushDeliveriesTotal  *prometheus.CounterVec
	InvalidTokensRevoked prometheus.Counter
	PushEventsPublished  *prometheus.CounterVec
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		FanoutJobsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fanout_jobs_total",
				Help:      "Nearby-post notification jobs by outcome",
			},
			[]string{"result"},
		),
		FanoutDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fanout_dispatch_duration_seconds",
				Help:      "Time spent dispatching one post's notifications",
				Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2, 3, 5},
			},
		),
		FanoutTimeoutsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "fanout_timeouts_total",
				Help:      "Dispatches that hit the fan-out deadline",
			},
		),
		NearbyQueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nearby_queries_total",
				Help:      "Nearby listings by post kind and mode (geo or fallback)",
			},
			[]string{"kind", "mode"},
		),
		CandidateCacheTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "candidate_cache_total",
				Help:      "Candidate cache lookups by result",
			},
			[]string{"set", "result"},
		),
		PushDeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "push_deliveries_total",
				Help:      "Device push deliveries by outcome",
			},
			[]string{"result"},
		),
		InvalidTokensRevoked: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "push_invalid_tokens_total",
				Help:      "Device tokens deactivated after the provider rejected them",
			},
		),
		PushEventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "push_events_published_total",
				Help:      "Push events handed to the message queue by provider and outcome",
			},
			[]string{"provider", "result"},
		),
	}
}

// Registry returns the registry backing these collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObservePublish records one push event publish attempt.
func (m *Metrics) ObservePublish(provider string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.PushEventsPublished.WithLabelValues(provider, result).Inc()
}

// ObserveFanout records one dispatch report.
func (m *Metrics) ObserveFanout(report fanout.Report, elapsed time.Duration) {
	m.FanoutJobsTotal.WithLabelValues("succeeded").Add(float64(report.Succeeded))
	m.FanoutJobsTotal.WithLabelValues("failed").Add(float64(len(report.FailedIDs)))
	m.FanoutJobsTotal.WithLabelValues("abandoned").Add(float64(report.Abandoned))
	m.FanoutDuration.Observe(elapsed.Seconds())
	if report.TimedOut {
		m.FanoutTimeoutsTotal.Inc()
	}
}

// ObserveNearby records one nearby listing.
func (m *Metrics) ObserveNearby(kind string, usedGeo bool) {
	mode := "fallback"
	if usedGeo {
		mode = "geo"
	}
	m.NearbyQueriesTotal.WithLabelValues(kind, mode).Inc()
}

// ObserveCache records a candidate cache lookup.
func (m *Metrics) ObserveCache(set string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CandidateCacheTotal.WithLabelValues(set, result).Inc()
}

// ObservePush records the outcome of one push batch.
func (m *Metrics) ObservePush(sent, failed, revoked int) {
	m.PushDeliveriesTotal.WithLabelValues("sent").Add(float64(sent))
	m.PushDeliveriesTotal.WithLabelValues("failed").Add(float64(failed))
	m.InvalidTokensRevoked.Add(float64(revoked))
}

// Middleware counts requests by route template rather than raw path to keep label cardinality bounded.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			if he, ok := errors.AsType[*echo.HTTPError](err); ok {
				status = he.Code
			}
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request().Method

		m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

		return err
	}
}
