package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campus-events/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(metrics.GinMiddleware())
	router.GET("/api/v1/events/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/metrics", metrics.Handler())

	matched := metrics.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/events/:id", "204")
	unmatched := metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")
	beforeMatched := testutil.ToFloat64(matched)
	beforeUnmatched := testutil.ToFloat64(unmatched)

	for _, path := range []string{"/api/v1/events/a", "/api/v1/events/b", "/nope"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(matched)-beforeMatched)
	assert.Equal(t, 1.0, testutil.ToFloat64(unmatched)-beforeUnmatched)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "campus_events_http_requests_total"))
}
