// Package metrics provides Prometheus metrics collection for the slotting service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// OptimizationsTotal counts optimization requests by outcome.
	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slotting_optimizations_total",
			Help: "Total number of optimization requests",
		},
		[]string{"status"},
	)

	// OptimizationDuration tracks end-to-end optimization duration.
	OptimizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slotting_optimization_duration_seconds",
			Help:    "Optimization duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	// SKUOutcomesTotal counts evaluated SKUs by status (packed, infeasible).
	SKUOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slotting_sku_outcomes_total",
			Help: "Total number of evaluated SKUs by outcome",
		},
		[]string{"status"},
	)

	// UnitsPlaced observes the best quantity found per packed SKU.
	UnitsPlaced = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slotting_units_placed",
			Help:    "Best unit quantity found per packed SKU",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 300},
		},
	)

	// OracleCallsTotal counts placement oracle calls by result (success, infeasible, error, timeout).
	OracleCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slotting_oracle_calls_total",
			Help: "Total number of placement oracle calls",
		},
		[]string{"result"},
	)

	// OracleCallDuration tracks a single placement oracle call.
	OracleCallDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slotting_oracle_call_duration_seconds",
			Help:    "Placement oracle call duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// CacheOperationsTotal tracks cache operations.
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

	// CircuitBreakerState exposes breaker state per name (0 closed, 1 half-open, 2 open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordOptimization records metrics for one optimization request.
func RecordOptimization(duration time.Duration, status string) {
	OptimizationDuration.Observe(duration.Seconds())
	OptimizationsTotal.WithLabelValues(status).Inc()
}

// RecordSKUOutcome records the outcome of one SKU evaluation.
func RecordSKUOutcome(status string, quantity int) {
	SKUOutcomesTotal.WithLabelValues(status).Inc()
	if quantity > 0 {
		UnitsPlaced.Observe(float64(quantity))
	}
}

// RecordOracleCall records one placement oracle call.
func RecordOracleCall(duration time.Duration, result string) {
	OracleCallDuration.Observe(duration.Seconds())
	OracleCallsTotal.WithLabelValues(result).Inc()
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

// SetCircuitBreakerState publishes the numeric state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
