package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		label          string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			label:          "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			label:          "/error",
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "collapses unmatched paths into one label",
			path:           "/random/123",
			label:          "unmatched",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.label, strconv.Itoa(tt.expectedStatus))
			before := testutil.ToFloat64(counter)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordOptimization(t *testing.T) {
	before := testutil.ToFloat64(OptimizationsTotal.WithLabelValues("success"))

	RecordOptimization(100*time.Millisecond, "success")
	RecordOptimization(50*time.Millisecond, "error")

	assert.Equal(t, before+1, testutil.ToFloat64(OptimizationsTotal.WithLabelValues("success")))
}

func TestRecordSKUOutcome(t *testing.T) {
	before := testutil.ToFloat64(SKUOutcomesTotal.WithLabelValues("infeasible"))

	RecordSKUOutcome("packed", 60)
	RecordSKUOutcome("infeasible", 0)

	assert.Equal(t, before+1, testutil.ToFloat64(SKUOutcomesTotal.WithLabelValues("infeasible")))
}

func TestRecordOracleCall(t *testing.T) {
	before := testutil.ToFloat64(OracleCallsTotal.WithLabelValues("timeout"))

	RecordOracleCall(time.Millisecond, "timeout")

	assert.Equal(t, before+1, testutil.ToFloat64(OracleCallsTotal.WithLabelValues("timeout")))
}

func TestCacheMetrics(t *testing.T) {
	RecordCacheOperation("get", "hit")
	UpdateCacheMetrics(10, 100)

	assert.Equal(t, 10.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("mongodb-catalog", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(CircuitBreakerState.WithLabelValues("mongodb-catalog")))
}
