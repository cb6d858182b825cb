package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/expense-tracker/internal/metrics"
)

// Metrics records Prometheus request metrics labelled by route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RecordRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
