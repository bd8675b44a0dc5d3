package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors are registered on the default registry through promauto.

var (
	// RoutePlansTotal counts route plans by cost profile and outcome
	// ("found", "no_route", "error").
	RoutePlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evenav_route_plans_total",
			Help: "Total number of route plans",
		},
		[]string{"profile", "outcome"},
	)

	// RoutePlanDuration measures how long the search itself takes.
	// Buckets go from microseconds (neighbouring systems) to a cross-map route.
	RoutePlanDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "evenav_route_plan_duration_seconds",
			Help:    "Duration of route searches in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"profile"},
	)

	// RouteExpandedNodes records how many systems a search expanded.
	RouteExpandedNodes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "evenav_route_expanded_nodes",
			Help:    "Number of systems expanded per route search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	// UniverseSystems is the number of systems in the loaded map.
	UniverseSystems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "evenav_universe_systems",
			Help: "Number of solar systems in the loaded map",
		},
	)

	// HttpRequestsTotal counts HTTP requests by method, path and status code.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evenav_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	// HttpRequestDuration measures server response time.
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "evenav_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "path"},
	)
)
