//go:build !integration

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/unwritten", func(c *gin.Context) {
		_ = c.Error(errors.New("storage failed"))
	})
	router.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("bad input"))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
	})
	router.GET("/clean", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	t.Run("sends 500 when handler wrote nothing", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/unwritten", nil, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrCodeInternal, resp.Error)
		assert.NotEmpty(t, resp.RequestID)
	})

	t.Run("keeps handler response", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/written", nil, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid_request"}`, w.Body.String())
	})

	t.Run("no errors", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/clean", nil, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
