package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/domain/dto"
	"github.com/guttosm/trip-service/internal/i18n"
	"github.com/guttosm/trip-service/internal/logger"
)

// ErrorHandler logs errors attached to the gin context after the handler ran.
// Client errors are logged at warn, everything else at error. When the handler
// attached an error without writing a response, a 500 envelope is sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		requestID := GetRequestID(c)
		status := c.Writer.Status()
		log := logger.WithRequestID(requestID)

		event := log.Error()
		if c.Writer.Written() && status >= 400 && status < 500 {
			event = log.Warn()
		}
		event.
			Str("error", c.Errors.Last().Error()).
			Int("errors", len(c.Errors)).
			Int("status_code", status).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
