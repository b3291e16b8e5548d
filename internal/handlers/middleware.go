package handlers

import (
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"logistics-api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LogRequest logs each request with method, path and latency. Used outside
// release mode only.
func LogRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// RequireAdminKey guards the configuration surface behind the X-Admin-Key
// header. The expected key comes from the ADMIN_API_KEY environment variable.
func RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		expected := os.Getenv("ADMIN_API_KEY")
		if expected == "" {
			sendError(c, http.StatusServiceUnavailable, "Admin API not configured", nil)
			c.Abort()
			return
		}

		provided := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			sendError(c, http.StatusUnauthorized, "Invalid admin key", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
