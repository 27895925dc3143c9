package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yonatan-reicher/staymarket-backend/pkg/logger"
)

// LoggingMiddleware tags every request with a request id and logs it with
// structured fields
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		log := logger.WithContext(map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
		})
		c.Set("logger", log)

		c.Next()

		latency := time.Since(startTime)
		statusCode := c.Writer.Status()

		fields := map[string]interface{}{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"body_size":   c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case statusCode >= 500:
			log.Error("Request failed", nil, fields)
		case statusCode >= 400:
			log.Warn("Request rejected", fields)
		default:
			log.Info("Request completed", fields)
		}
	}
}
