//go:build unit

package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"restaurant-reservations/internal/handler/httperr"
	"restaurant-reservations/internal/handler/middleware"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/pkg/metrics"
	"restaurant-reservations/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	return engine
}

func TestRateLimiter(t *testing.T) {
	t.Run("rejects requests beyond the burst", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 0.001, Burst: 2}, discardLogger())
		engine := newEngine(limiter.Middleware(), middleware.ErrorHandler())
		engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 2; i++ {
			rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
		}

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil)
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many requests")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "1"})
	})

	t.Run("disabled limiter lets everything through", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{Enabled: false, RPS: 0.001, Burst: 1}, discardLogger())
		engine := newEngine(limiter.Middleware())
		engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 5; i++ {
			rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine(middleware.CustomRecovery(discardLogger()))
	engine.GET("/panic", func(_ *gin.Context) { panic("boom") })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/panic", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestErrorHandler(t *testing.T) {
	engine := newEngine(middleware.ErrorHandler())
	engine.GET("/public", func(c *gin.Context) {
		resp := httperr.Response{Status: http.StatusConflict}
		resp.Error.Message = "Conflict"
		_ = c.Error(&gin.Error{Err: errors.New("conflict"), Type: gin.ErrorTypePublic, Meta: resp})
	})
	engine.GET("/no-content", func(c *gin.Context) {
		httperr.Warn(c, errors.New("disk full"), "not saved")
		c.Status(http.StatusNoContent)
	})
	engine.GET("/forgotten", func(_ *gin.Context) {})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/public", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Conflict")

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/no-content", nil)
	httptest.AssertNoContent(t, rec)
	httptest.AssertHeaders(t, rec, map[string]string{"Warning": `199 - "not saved"`})

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/forgotten", nil)
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewMetrics(metrics.Namespace, prometheus.NewRegistry())
	engine := newEngine(middleware.MetricsMiddleware(m))
	engine.GET("/api/reservations/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	httptest.PerformRequest(t, engine, http.MethodGet, "/api/reservations/a", nil)
	httptest.PerformRequest(t, engine, http.MethodGet, "/api/reservations/b", nil)
	httptest.PerformRequest(t, engine, http.MethodGet, "/missing", nil)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/reservations/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "unmatched", "404")))
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02 15:04:05.000"})
	engine := newEngine(logger.LoggingMiddleware())

	var seen string
	engine.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil)
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
}
