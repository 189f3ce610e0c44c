package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config in YAML. Pointer fields distinguish "unset" from zero.
type fileConfig struct {
	Server struct {
		Port               string   `yaml:"port"`
		RateLimit          *float64 `yaml:"rate_limit"`
		RateBurst          *int     `yaml:"rate_burst"`
		CORSOrigins        []string `yaml:"cors_origins"`
		SwaggerUser        string   `yaml:"swagger_user"`
		SwaggerPass        string   `yaml:"swagger_pass"`
		RequestTimeout     string   `yaml:"request_timeout"`
		ShutdownTimeout    string   `yaml:"shutdown_timeout"`
		IdempotencyEnabled *bool    `yaml:"idempotency_enabled"`
		IdempotencyTTL     string   `yaml:"idempotency_ttl"`
	} `yaml:"server"`
	Cache struct {
		Size *int   `yaml:"size"`
		TTL  string `yaml:"ttl"`
	} `yaml:"cache"`
	Solver struct {
		MaxWeight *int `yaml:"max_weight"`
		MaxItems  *int `yaml:"max_items"`
		MaxCells  *int `yaml:"max_cells"`
	} `yaml:"solver"`
	Database struct {
		URI            string `yaml:"uri"`
		Name           string `yaml:"name"`
		ActivityTTL    string `yaml:"activity_ttl"`
		Enabled        *bool  `yaml:"enabled"`
		CircuitBreaker struct {
			FailureThreshold *int   `yaml:"failure_threshold"`
			SuccessThreshold *int   `yaml:"success_threshold"`
			Timeout          string `yaml:"timeout"`
		} `yaml:"circuit_breaker"`
	} `yaml:"database"`
	Logging struct {
		Level  string `yaml:"level"`
		Pretty *bool  `yaml:"pretty"`
	} `yaml:"logging"`
}

func loadFromFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return &fc, nil
}

// apply copies every set field onto cfg. Malformed durations are errors.
func (fc *fileConfig) apply(cfg *Config) error {
	setString(&cfg.Server.Port, fc.Server.Port)
	setPtr(&cfg.Server.RateLimit, fc.Server.RateLimit)
	setPtr(&cfg.Server.RateBurst, fc.Server.RateBurst)
	if len(fc.Server.CORSOrigins) > 0 {
		cfg.Server.CORSOrigins = fc.Server.CORSOrigins
	}
	setString(&cfg.Server.SwaggerUser, fc.Server.SwaggerUser)
	setString(&cfg.Server.SwaggerPass, fc.Server.SwaggerPass)
	setPtr(&cfg.Server.IdempotencyEnabled, fc.Server.IdempotencyEnabled)

	setPtr(&cfg.Cache.Size, fc.Cache.Size)
	setPtr(&cfg.Solver.MaxWeight, fc.Solver.MaxWeight)
	setPtr(&cfg.Solver.MaxItems, fc.Solver.MaxItems)
	setPtr(&cfg.Solver.MaxCells, fc.Solver.MaxCells)

	setString(&cfg.Database.URI, fc.Database.URI)
	setString(&cfg.Database.DatabaseName, fc.Database.Name)
	setPtr(&cfg.Database.Enabled, fc.Database.Enabled)
	setPtr(&cfg.Database.CircuitBreakerFailureThreshold, fc.Database.CircuitBreaker.FailureThreshold)
	setPtr(&cfg.Database.CircuitBreakerSuccessThreshold, fc.Database.CircuitBreaker.SuccessThreshold)

	setString(&cfg.Logging.Level, fc.Logging.Level)
	setPtr(&cfg.Logging.Pretty, fc.Logging.Pretty)

	durations := []struct {
		field string
		raw   string
		dst   *time.Duration
	}{
		{"server.request_timeout", fc.Server.RequestTimeout, &cfg.Server.RequestTimeout},
		{"server.shutdown_timeout", fc.Server.ShutdownTimeout, &cfg.Server.ShutdownTimeout},
		{"server.idempotency_ttl", fc.Server.IdempotencyTTL, &cfg.Server.IdempotencyTTL},
		{"cache.ttl", fc.Cache.TTL, &cfg.Cache.TTL},
		{"database.activity_ttl", fc.Database.ActivityTTL, &cfg.Database.ActivityTTL},
		{"database.circuit_breaker.timeout", fc.Database.CircuitBreaker.Timeout, &cfg.Database.CircuitBreakerTimeout},
	}
	for _, d := range durations {
		if d.raw == "" {
			continue
		}
		v, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("%s: %w", d.field, err)
		}
		*d.dst = v
	}

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setPtr[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
