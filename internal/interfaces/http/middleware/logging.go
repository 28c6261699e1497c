// Package middleware carries the gin middleware shared by every route.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/prometheus"
)

// Logging logs every request with latency and status, and feeds the HTTP
// metrics when a collector is supplied.
func Logging(log logging.Logger, metrics *prometheus.Metrics) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()

		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request served", fields...)
		}

		if metrics != nil {
			metrics.ObserveHTTP(c.Request.Method, path, status, elapsed)
		}
	}
}

// Recovery converts panics into 500 responses with a log entry instead of a
// dropped connection.
func Recovery(log logging.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("handler panic",
					logging.Any("panic", r),
					logging.String("path", c.Request.URL.Path))
				c.AbortWithStatus(500)
			}
		}()
		c.Next()
	}
}
