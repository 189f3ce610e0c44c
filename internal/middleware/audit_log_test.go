//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditLog(t *testing.T) {
	sink := &recordingSink{}
	router := gin.New()
	router.Use(RequestID())
	router.POST("/trips", func(c *gin.Context) {
		AuditLog(sink, c, model.ActionCreateTrip, "abc", "Trip created", map[string]interface{}{"items": 2})
		c.Status(http.StatusCreated)
	})
	router.DELETE("/trips/:id", func(c *gin.Context) {
		AuditLogError(sink, c, model.ActionDeleteTrip, c.Param("id"), "Trip delete failed", errors.New("not found"), nil)
		c.Status(http.StatusNotFound)
	})

	perform(router, http.MethodPost, "/trips", nil, map[string]string{RequestIDHeader: "req-1", "User-Agent": "test-agent"})
	perform(router, http.MethodDelete, "/trips/xyz", nil, nil)

	entries := sink.Entries()
	require.Len(t, entries, 2)

	created := entries[0]
	assert.Equal(t, "info", created.Level)
	assert.Equal(t, model.ActionCreateTrip, created.Action)
	assert.Equal(t, "abc", created.TripID)
	assert.Equal(t, "req-1", created.RequestID)
	assert.Equal(t, http.MethodPost, created.Method)
	assert.Equal(t, "/trips", created.Path)
	assert.Equal(t, "test-agent", created.UserAgent)
	assert.Equal(t, 2, created.Fields["items"])
	assert.Empty(t, created.Error)

	failed := entries[1]
	assert.Equal(t, "error", failed.Level)
	assert.Equal(t, model.ActionDeleteTrip, failed.Action)
	assert.Equal(t, "xyz", failed.TripID)
	assert.Equal(t, "not found", failed.Error)
}

func TestAuditLog_NilSink(t *testing.T) {
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		AuditLog(nil, c, model.ActionCreateTrip, "", "no sink", nil)
		AuditLogError(nil, c, model.ActionCreateTrip, "", "no sink", nil, nil)
		c.Status(http.StatusOK)
	})

	assert.NotPanics(t, func() {
		perform(router, http.MethodGet, "/", nil, nil)
	})
}
