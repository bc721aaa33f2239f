package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key the request logger stores the id under.
const RequestIDKey = "request_id"

// LoggerMiddleware tags every request with a short id and logs one line per
// request. The desktop shell sends no correlation header of its own, so the
// id is always generated here and echoed back in the response.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()[:8]
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		log.Printf("[%s] %s %s | %d | %v",
			requestID,
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start),
		)

		for _, e := range c.Errors {
			log.Printf("[%s] Error: %v", requestID, e.Err)
		}
	}
}
