package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/guttosm/trip-service/internal/logger"
)

// RequestLogger logs one line per request and queues an activity entry when sink is non-nil.
// Paths in skip are neither logged nor recorded.
func RequestLogger(sink ActivitySink, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skipped[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		statusCode := c.Writer.Status()
		level := levelForStatus(statusCode)
		requestID := GetRequestID(c)

		log := logger.WithRequestID(requestID).With().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		switch level {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if sink == nil {
			return
		}
		sink.Log(&model.ActivityEntry{
			Timestamp:  start.UTC(),
			Level:      level,
			Message:    "HTTP request",
			Action:     model.ActionHTTPRequest,
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			DurationMS: latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
			Error:      c.Errors.ByType(gin.ErrorTypeAny).String(),
		})
	}
}

func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
