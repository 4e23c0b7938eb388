// Package metrics exposes Prometheus collectors for the HTTP API and
// the scoring engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wearwise_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wearwise_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wearwise_http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Scoring metrics
var (
	SearchesPerformed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wearwise_searches_total",
			Help: "Total number of catalog searches",
		},
	)

	ScoresComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wearwise_scores_total",
			Help: "Total number of compositions scored",
		},
	)

	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wearwise_recommendations_generated_total",
			Help: "Total number of substitution recommendations generated",
		},
		[]string{"label"},
	)

	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wearwise_catalog_cache_hits_total",
			Help: "Catalog search responses served from cache",
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wearwise_catalog_cache_misses_total",
			Help: "Catalog searches that fell through to the upstream client",
		},
	)
)
