package metrics

import (
	"net/http"
	"net/http/httptest"
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
	router.GET("/trips", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.DELETE("/trips/:id", func(c *gin.Context) {
		c.String(http.StatusNotFound, "missing")
	})

	tests := []struct {
		name       string
		method     string
		path       string
		route      string
		statusCode string
	}{
		{name: "static route", method: http.MethodGet, path: "/trips", route: "/trips", statusCode: "200"},
		{name: "parameterised route", method: http.MethodDelete, path: "/trips/abc", route: "/trips/:id", statusCode: "404"},
		{name: "unmatched route", method: http.MethodGet, path: "/nope", route: "unmatched", statusCode: "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := HTTPRequestTotal.WithLabelValues(tt.method, tt.route, tt.statusCode)
			before := testutil.ToFloat64(counter)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestRecordSolve(t *testing.T) {
	feasible := TripSolvesTotal.WithLabelValues("feasible")
	cached := TripSolvesTotal.WithLabelValues("cached")
	beforeFeasible := testutil.ToFloat64(feasible)
	beforeCached := testutil.ToFloat64(cached)

	RecordSolve(2*time.Millisecond, "feasible")
	RecordSolve(0, "cached")

	assert.Equal(t, beforeFeasible+1, testutil.ToFloat64(feasible))
	assert.Equal(t, beforeCached+1, testutil.ToFloat64(cached))
}

func TestObserveTableCells(t *testing.T) {
	ObserveTableCells(24)
	assert.Equal(t, 1, testutil.CollectAndCount(TripSolveTableCells))
}

func TestRecordCacheOperation(t *testing.T) {
	hits := CacheOperationsTotal.WithLabelValues("get", "hit")
	before := testutil.ToFloat64(hits)

	RecordCacheOperation("get", "hit")

	assert.Equal(t, before+1, testutil.ToFloat64(hits))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(75, 100)

	assert.Equal(t, float64(75), testutil.ToFloat64(CacheSize))
	assert.Equal(t, float64(100), testutil.ToFloat64(CacheCapacity))
}

func TestSetCircuitBreakerState(t *testing.T) {
	SetCircuitBreakerState("trips", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("trips")))

	SetCircuitBreakerState("trips", 0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("trips")))
}
