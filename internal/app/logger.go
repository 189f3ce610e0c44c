// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/trip-service/config"
	"github.com/guttosm/trip-service/internal/logger"
)

// InitializeLogger configures the global logger from cfg.
func InitializeLogger(cfg config.LoggingConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
