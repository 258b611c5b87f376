package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes a single access-log line per request with the status code,
// client IP and handling time.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf(
			"%s %s from %s -> %d in %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
