package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route pattern, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// Review provider
	ReviewProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "review_provider_requests_total",
			Help: "Review provider calls by result (success, failure, rejected)",
		},
		[]string{"result"},
	)

	ReviewProviderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "review_provider_request_duration_seconds",
			Help:    "Duration of review provider calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	// Recommendations
	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates",
			Help:    "Number of candidate films considered per request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	RecommendationsQualified = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendations_qualified",
			Help:    "Number of candidates passing the review quality filter per request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
)
