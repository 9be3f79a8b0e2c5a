package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"fincontrol/internal/metrics"
)

// Metrics records the count and latency of every request by route template.
// Unmatched paths are grouped under "unmatched".
func Metrics(recorder metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		recorder.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
