package middleware

import (
	"time"

	"solar-quote/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger attaches a request-scoped logger to the request context and logs
// one line per request once it completes.
func Logger(base *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := base.With(
			"request_id", uuid.NewString(),
			"method", c.Request.Method,
			"route", c.Request.URL.Path,
		)
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), reqLog))

		c.Next()

		fields := []interface{}{
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if len(c.Errors) > 0 {
			reqLog.Warnw("request failed", append(fields, "errors", c.Errors.String())...)
			return
		}
		reqLog.Infow("request", fields...)
	}
}
