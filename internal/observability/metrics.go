// Package observability holds the Prometheus collectors shared across layers.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dripdrop_http_requests_total",
		Help: "HTTP requests by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dripdrop_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern and method.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	ProfileCacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dripdrop_profile_cache_results_total",
		Help: "Public profile cache lookups by result (hit, miss, error).",
	}, []string{"result"})

	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dripdrop_redis_errors_total",
		Help: "Failed Redis commands by command name.",
	}, []string{"command"})

	ItemClicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dripdrop_item_clicks_total",
		Help: "Click tracking attempts by outcome (recorded, unknown_item, dropped).",
	}, []string{"outcome"})

	SessionRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dripdrop_session_refreshes_total",
		Help: "Session refresh attempts made by the session gate, by outcome.",
	}, []string{"outcome"})
)
