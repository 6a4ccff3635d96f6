package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skanos/backend/internal/telemetry"
)

// Metrics records per-request Prometheus counters and latency. The route
// template (not the raw path) is used as a label to keep cardinality low.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		telemetry.HTTPRequests.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		telemetry.HTTPDuration.WithLabelValues(route).
			Observe(float64(time.Since(start).Milliseconds()))
	}
}
