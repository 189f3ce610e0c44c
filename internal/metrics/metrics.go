// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, route, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal counts HTTP requests by method, route, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// TripSolvesTotal counts planner calls by outcome:
	// feasible, infeasible, cached, rejected or invalid.
	TripSolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trip_solves_total",
			Help: "Total number of trip knapsack solves by outcome",
		},
		[]string{"status"},
	)

	// TripSolveDuration tracks solver run time. Cached and rejected requests are not observed.
	TripSolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trip_solve_duration_seconds",
			Help:    "Knapsack solve duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	// TripSolveTableCells tracks the selection table size of each solve.
	TripSolveTableCells = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trip_solve_table_cells",
			Help:    "Number of cells in the knapsack selection table",
			Buckets: prometheus.ExponentialBuckets(10, 10, 8),
		},
	)

	// CacheOperationsTotal tracks solve cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CircuitBreakerState exposes each breaker's state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// ActivityDroppedTotal counts activity entries discarded because the writer queue was full.
	ActivityDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "activity_entries_dropped_total",
			Help: "Total number of activity entries dropped by the async writer",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
// Unmatched routes are labelled by their raw path.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(time.Since(start).Seconds())
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordSolve records the outcome of a planner call. A zero duration is not observed.
func RecordSolve(duration time.Duration, status string) {
	if duration > 0 {
		TripSolveDuration.Observe(duration.Seconds())
	}
	TripSolvesTotal.WithLabelValues(status).Inc()
}

// ObserveTableCells records the selection table size of a solve.
func ObserveTableCells(cells int) {
	TripSolveTableCells.Observe(float64(cells))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes a breaker's state.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
