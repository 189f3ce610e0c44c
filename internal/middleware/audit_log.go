package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/guttosm/trip-service/internal/logger"
)

// AuditLog records a trip action. The entry is written to the console log and,
// when sink is non-nil, queued for persistence.
func AuditLog(sink ActivitySink, c *gin.Context, action, tripID, message string, fields map[string]interface{}) {
	entry := newAuditEntry(c, "info", action, tripID, message, fields)

	log := logger.WithRequestID(entry.RequestID)
	log.Info().
		Str("action", action).
		Str("trip_id", tripID).
		Fields(fields).
		Msg(message)

	if sink != nil {
		sink.Log(entry)
	}
}

// AuditLogError records a failed trip action.
func AuditLogError(sink ActivitySink, c *gin.Context, action, tripID, message string, err error, fields map[string]interface{}) {
	entry := newAuditEntry(c, "error", action, tripID, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}

	log := logger.WithRequestID(entry.RequestID)
	log.Warn().
		Err(err).
		Str("action", action).
		Str("trip_id", tripID).
		Fields(fields).
		Msg(message)

	if sink != nil {
		sink.Log(entry)
	}
}

func newAuditEntry(c *gin.Context, level, action, tripID, message string, fields map[string]interface{}) *model.ActivityEntry {
	return &model.ActivityEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		Action:    action,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		TripID:    tripID,
		Fields:    fields,
	}
}
