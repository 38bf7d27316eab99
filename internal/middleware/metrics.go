package middleware

import (
	"time"

	"github.com/SscSPs/workly_crm/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per route template.
func MetricsMiddleware(registry *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// Route templates keep label cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		registry.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
