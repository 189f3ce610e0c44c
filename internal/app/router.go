// Package app provides router configuration.
package app

import (
	"github.com/guttosm/trip-service/config"
	"github.com/guttosm/trip-service/internal/http"
	"github.com/guttosm/trip-service/internal/middleware"
	"github.com/guttosm/trip-service/internal/repository"
	"github.com/guttosm/trip-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.TripHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// AsyncLogger is nil when activity is not persisted.
	AsyncLogger *middleware.AsyncLogger
}

// InitializeRouter builds handlers and router configuration. With no database
// components, trips are kept in memory and activity only goes to the console log.
func InitializeRouter(planner service.TripPlanner, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	var tripRepo repository.TripRepositoryInterface = repository.NewMemoryTripRepository()
	var asyncLogger *middleware.AsyncLogger
	var sink middleware.ActivitySink

	if dbComponents != nil {
		tripRepo = dbComponents.TripRepo
		healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		healthHandler.RegisterCircuitBreaker("mongodb_trips", dbComponents.TripsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_activity", dbComponents.ActivityCircuitBreaker)

		if dbComponents.ActivityService != nil {
			asyncLogger = middleware.NewAsyncLogger(dbComponents.ActivityService, middleware.DefaultAsyncLoggerConfig())
			sink = asyncLogger
		}
	}

	handler := http.NewTripHandler(service.NewTripService(planner, tripRepo), sink)

	routerCfg := http.RouterConfig{
		ActivitySink:   sink,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateBurst)
	}
	if cfg.Server.IdempotencyEnabled {
		routerCfg.Idempotency = middleware.NewIdempotency(cfg.Server.IdempotencyTTL)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
		AsyncLogger:   asyncLogger,
	}
}
