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

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusOK, "info"},
		{http.StatusCreated, "info"},
		{http.StatusMovedPermanently, "info"},
		{http.StatusBadRequest, "warn"},
		{http.StatusNotFound, "warn"},
		{http.StatusTooManyRequests, "warn"},
		{http.StatusInternalServerError, "error"},
		{http.StatusServiceUnavailable, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, levelForStatus(tt.status))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	sink := &recordingSink{}
	router := gin.New()
	router.Use(RequestID(), RequestLogger(sink, "/healthz"))
	router.GET("/trips", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.DELETE("/trips/:id", func(c *gin.Context) {
		_ = c.Error(errors.New("trip not found"))
		c.Status(http.StatusNotFound)
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	perform(router, http.MethodGet, "/trips", nil, map[string]string{RequestIDHeader: "req-42"})
	perform(router, http.MethodDelete, "/trips/1", nil, nil)
	perform(router, http.MethodGet, "/healthz", nil, nil)

	entries := sink.Entries()
	require.Len(t, entries, 2, "skipped paths are not recorded")

	ok := entries[0]
	assert.Equal(t, model.ActionHTTPRequest, ok.Action)
	assert.Equal(t, "req-42", ok.RequestID)
	assert.Equal(t, http.MethodGet, ok.Method)
	assert.Equal(t, "/trips", ok.Path)
	assert.Equal(t, http.StatusOK, ok.StatusCode)
	assert.Equal(t, "info", ok.Level)
	assert.Empty(t, ok.Error)
	assert.False(t, ok.Timestamp.IsZero())

	missing := entries[1]
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
	assert.Equal(t, "warn", missing.Level)
	assert.Contains(t, missing.Error, "trip not found")
}

func TestRequestLogger_NilSink(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger(nil))
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := perform(router, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
