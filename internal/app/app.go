// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trip-service/config"
	"github.com/guttosm/trip-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired application: the gin engine plus the components that need
// an orderly shutdown.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
	routing  *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Logging)

	services := InitializeServices(cfg)
	database := InitializeDatabase(cfg.Database)
	routing := InitializeRouter(services.Planner, database, cfg)

	return &App{
		Router:   http.NewRouter(routing.Handler, routing.HealthHandler, routing.Config),
		services: services,
		database: database,
		routing:  routing,
	}
}

// Close releases background workers and the database connection. Queued
// activity entries are flushed before MongoDB is disconnected.
func (a *App) Close(ctx context.Context) error {
	if a.routing != nil {
		if a.routing.Config.Idempotency != nil {
			a.routing.Config.Idempotency.Stop()
		}
		if a.routing.Config.RateLimiter != nil {
			a.routing.Config.RateLimiter.Stop()
		}
		a.routing.AsyncLogger.Stop()
	}

	if a.services != nil && a.services.Planner != nil {
		a.services.Planner.Stop()
	}

	var errs []error
	if a.database != nil && a.database.DB != nil {
		if err := a.database.DB.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close mongodb: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Info().Msg("Application resources released")
	return nil
}
