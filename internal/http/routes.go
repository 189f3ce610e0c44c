package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of routes registered together.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// TripRoutes registers the /trips resource.
type TripRoutes struct {
	handler *TripHandler
}

// NewTripRoutes creates a new TripRoutes instance.
func NewTripRoutes(handler *TripHandler) *TripRoutes {
	return &TripRoutes{handler: handler}
}

// RegisterRoutes registers list, create and delete. Create is wrapped in the
// idempotency middleware when cfg carries one.
func (r *TripRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	trips := rg.Group("/trips")

	create := []gin.HandlerFunc{r.handler.CreateTrip}
	if cfg.Idempotency != nil {
		create = append([]gin.HandlerFunc{cfg.Idempotency.Middleware()}, create...)
	}

	trips.GET("", r.handler.ListTrips)
	trips.POST("", create...)
	trips.DELETE("/:id", r.handler.DeleteTrip)
}
