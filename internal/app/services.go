// Package app provides service initialization.
package app

import (
	"github.com/guttosm/trip-service/config"
	"github.com/guttosm/trip-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Planner *service.TripPlannerService
}

// InitializeServices builds the trip planner with the configured limits and cache.
func InitializeServices(cfg config.Config) *ServiceComponents {
	opts := []service.Option{
		service.WithLimits(service.Limits{
			MaxWeight: cfg.Solver.MaxWeight,
			MaxItems:  cfg.Solver.MaxItems,
			MaxCells:  cfg.Solver.MaxCells,
		}),
	}

	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	return &ServiceComponents{
		Planner: service.NewTripPlannerService(opts...),
	}
}
