package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"reex.app/server/common/id"
	"reex.app/server/common/logger"
)

// Logger assigns a request id, attaches it to the request context so
// every downstream log line carries it, and logs one summary line per
// completed request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := id.NewString()
		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
		})
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		slog.InfoContext(ctx, "request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
