package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// HTTPRecorder observes served requests.
type HTTPRecorder interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

// MetricsMiddleware records count and latency per route template.
type MetricsMiddleware struct {
	recorder HTTPRecorder
	skipPath string
}

// NewMetricsMiddleware creates a metrics middleware. Requests to skipPath are not recorded.
func NewMetricsMiddleware(recorder HTTPRecorder, skipPath string) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder, skipPath: skipPath}
}

// Handle must run outside the middleware that renders errors so the final status is known.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.skipPath != "" && c.Request().URL.Path == m.skipPath {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" || route == "/*" {
			route = unmatchedRoute
		}
		m.recorder.ObserveHTTPRequest(
			c.Request().Method,
			route,
			strconv.Itoa(c.Response().Status),
			time.Since(start).Seconds(),
		)

		return err
	}
}
