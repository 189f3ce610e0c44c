// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/trip-service/config"
	"github.com/guttosm/trip-service/internal/circuitbreaker"
	"github.com/guttosm/trip-service/internal/repository"
	"github.com/guttosm/trip-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	TripRepo               repository.TripRepositoryInterface
	ActivityService        service.ActivityService
	TripsCircuitBreaker    *circuitbreaker.CircuitBreaker
	ActivityCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the guarded repositories.
// It returns nil when the database is disabled or unreachable; the caller then
// falls back to in-memory storage.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory storage")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if cfg.ActivityTTL > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := db.SetActivityTTL(ctx, cfg.ActivityTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to set activity TTL index")
		}
		cancel()
	}

	tripsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-trips",
		IsFailure:        repository.IsDependencyFailure,
	})

	activityCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-activity",
	})

	tripRepo := repository.NewTripRepositoryWithCircuitBreaker(repository.NewTripRepository(db), tripsCB)
	activityRepo := repository.NewActivityRepositoryWithCircuitBreaker(repository.NewActivityRepository(db), activityCB)

	return &DatabaseComponents{
		DB:                     db,
		TripRepo:               tripRepo,
		ActivityService:        service.NewActivityService(activityRepo),
		TripsCircuitBreaker:    tripsCB,
		ActivityCircuitBreaker: activityCB,
	}
}
