// Package main is the entry point for the trip-service application.
//
// @title           Trip Service API
// @version         1.0.0
// @description     API for planning trips: picks the candidate items with the most calories that fit a weight budget.
//
//	Trips whose best selection falls below the calorie floor are stored with no items.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/trip-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Trips
// @tag.description Trip planning and storage
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/trip-service/docs" // swagger docs

	"github.com/guttosm/trip-service/config"
	"github.com/guttosm/trip-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	a := app.InitializeApp(cfg)
	server := app.NewServer(a.Router, cfg.Server.Port,
		app.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		app.WithShutdownHook(a.Close),
	)

	if err := server.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
