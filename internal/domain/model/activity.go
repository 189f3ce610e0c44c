package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity action types.
const (
	ActionHTTPRequest = "http_request"
	ActionCreateTrip  = "create_trip"
	ActionDeleteTrip  = "delete_trip"
)

// ActivityEntry records an HTTP request or an audited trip action.
// Fields carries action-specific context.
type ActivityEntry struct {
	ID         primitive.ObjectID     `json:"id"`
	Timestamp  time.Time              `json:"timestamp"`
	Level      string                 `json:"level"`
	Message    string                 `json:"message"`
	Action     string                 `json:"action"`
	RequestID  string                 `json:"request_id,omitempty"`
	Method     string                 `json:"method,omitempty"`
	Path       string                 `json:"path,omitempty"`
	StatusCode int                    `json:"status_code,omitempty"`
	DurationMS int64                  `json:"duration_ms,omitempty"`
	IP         string                 `json:"ip,omitempty"`
	UserAgent  string                 `json:"user_agent,omitempty"`
	TripID     string                 `json:"trip_id,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Fields     map[string]interface{} `json:"fields,omitempty"`
}

// WithField sets a single context field.
func (e *ActivityEntry) WithField(key string, value interface{}) *ActivityEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// ActivityQuery filters stored activity entries.
type ActivityQuery struct {
	RequestID string
	Action    string
	TripID    string
	Since     *time.Time
	Limit     int
}
