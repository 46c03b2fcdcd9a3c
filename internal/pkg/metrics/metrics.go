package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roomfinder"

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_flight",
			Help:      "Current number of HTTP requests being processed",
		},
	)
)

// Entitlement metrics
var (
	GrantsPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grants_purchased_total",
			Help:      "Total number of access grants purchased",
		},
		[]string{"area"},
	)

	GrantRevenue = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grant_revenue_total",
			Help:      "Sum of prices paid for access grants",
		},
	)

	PurchaseFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_failures_total",
			Help:      "Total number of failed purchases by reason",
		},
		[]string{"reason"},
	)

	GrantViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grant_views_total",
			Help:      "Detail views of pinned listings; counted=false for repeat views",
		},
		[]string{"counted"},
	)
)

// Background job metrics
var (
	SweeperRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeper_runs_total",
			Help:      "Total number of expiry sweeper runs",
		},
		[]string{"status"},
	)

	SweeperDeactivated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeper_grants_deactivated_total",
			Help:      "Total number of grants deactivated by the expiry sweeper",
		},
	)

	SweeperDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweeper_duration_seconds",
			Help:      "Expiry sweeper run time distribution",
			Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10},
		},
	)
)

// Cache metrics
var (
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by cache name and result",
		},
		[]string{"cache", "result"},
	)
)
