package middleware

import (
	"strconv"
	"time"

	"artisthub/internal/metrics"

	"github.com/labstack/echo/v4"
)

// PrometheusMetrics records per-route request counts and latency. The route
// template is used as the path label so /artworks/:slug stays one series.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(c.Response().Status),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
		).Observe(time.Since(start).Seconds())

		return err
	}
}
