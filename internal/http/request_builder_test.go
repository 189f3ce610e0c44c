//go:build !integration

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/internal/domain/dto"
	"github.com/guttosm/trip-service/internal/i18n"
	"github.com/guttosm/trip-service/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedBody struct {
	Name string `json:"name" binding:"required"`
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"weekend"}`},
		{name: "missing required field", body: `{}`, wantErr: true},
		{name: "malformed", body: `{`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *namedBody
			var gotErr error
			router := gin.New()
			router.POST("/", func(c *gin.Context) {
				got, gotErr = BuildRequest[namedBody](c)
				c.Status(http.StatusOK)
			})

			doRequest(router, http.MethodPost, "/", tt.body, nil)

			if tt.wantErr {
				assert.Error(t, gotErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, "weekend", got.Name)
		})
	}
}

func TestResponseBuilder(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/ok", func(c *gin.Context) {
		NewResponseBuilder(c).SuccessOK(gin.H{"n": 1})
	})
	router.GET("/created", func(c *gin.Context) {
		NewResponseBuilder(c).SuccessCreated(gin.H{"n": 2})
	})
	router.GET("/error", func(c *gin.Context) {
		NewResponseBuilder(c).Error(http.StatusNotFound, i18n.ErrKeyTripNotFound, errors.New("missing"))
	})
	router.GET("/details", func(c *gin.Context) {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyValidationMaxWeight,
			map[string]string{"maxWeight": "is required"}, nil)
	})

	t.Run("success envelope", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/ok", "", map[string]string{middleware.RequestIDHeader: "req-7"})
		assert.Equal(t, http.StatusOK, w.Code)
		var data map[string]int
		resp := decodeData(t, w, &data)
		assert.Equal(t, "req-7", resp.RequestID)
		assert.Equal(t, 1, data["n"])
	})

	t.Run("created", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/created", "", nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("translated error", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/error", "", map[string]string{"Accept-Language": "es"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
		assert.Equal(t, "Viaje no encontrado", resp.Message)
		assert.Nil(t, resp.Details)
	})

	t.Run("details", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/details", "", nil)
		resp := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
		assert.Equal(t, map[string]string{"maxWeight": "is required"}, resp.Details)
	})
}

func TestResponsePools_ResetFields(t *testing.T) {
	resp := getErrorResponse()
	resp.Error = "x"
	resp.Details = map[string]string{"a": "b"}
	putErrorResponse(resp)
	assert.Empty(t, resp.Error)
	assert.Nil(t, resp.Details)

	ok := getSuccessResponse()
	ok.Data = 1
	ok.RequestID = "r"
	putSuccessResponse(ok)
	assert.Nil(t, ok.Data)
	assert.Empty(t, ok.RequestID)
}
