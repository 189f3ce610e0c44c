// Package config provides configuration management for the trip service.
//
// Values resolve as defaults, then the YAML file named by CONFIG_FILE, then
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ConfigFileEnv names the environment variable holding the optional YAML file path.
const ConfigFileEnv = "CONFIG_FILE"

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Solver   SolverConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	// RateLimit is requests per second per client IP. Zero disables rate limiting.
	RateLimit          float64
	RateBurst          int
	CORSOrigins        []string
	SwaggerUser        string
	SwaggerPass        string
	RequestTimeout     time.Duration
	ShutdownTimeout    time.Duration
	IdempotencyEnabled bool
	IdempotencyTTL     time.Duration
}

// CacheConfig holds solve result cache configuration. Size 0 disables the cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// SolverConfig bounds a single solve request. Zero disables a limit.
type SolverConfig struct {
	MaxWeight int
	MaxItems  int
	MaxCells  int
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	ActivityTTL  time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LoggingConfig holds console logger configuration.
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:               "8080",
			RateLimit:          10,
			RateBurst:          20,
			CORSOrigins:        []string{"http://localhost:3000"},
			RequestTimeout:     30 * time.Second,
			ShutdownTimeout:    10 * time.Second,
			IdempotencyEnabled: true,
			IdempotencyTTL:     5 * time.Minute,
		},
		Cache: CacheConfig{
			Size: 1000,
			TTL:  5 * time.Minute,
		},
		Solver: SolverConfig{
			MaxWeight: 100_000,
			MaxItems:  1_000,
			MaxCells:  50_000_000,
		},
		Database: DatabaseConfig{
			URI:                            "mongodb://localhost:27017",
			DatabaseName:                   "trip_service",
			ActivityTTL:                    30 * 24 * time.Hour,
			Enabled:                        false,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load resolves the configuration. It fails only when CONFIG_FILE names a file
// that cannot be read or parsed.
func Load() (Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(os.Getenv(ConfigFileEnv)); path != "" {
		fileCfg, err := loadFromFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config file %q: %w", path, err)
		}
		if err := fileCfg.apply(&cfg); err != nil {
			return Config{}, fmt.Errorf("apply config file %q: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides cfg with every environment variable that is set and valid.
func applyEnv(cfg *Config) {
	s := &cfg.Server
	s.Port = getEnv("PORT", s.Port)
	s.RateLimit = getEnvFloat("RATE_LIMIT", s.RateLimit)
	s.RateBurst = getEnvInt("RATE_BURST", s.RateBurst)
	s.CORSOrigins = getEnvList("CORS_ORIGINS", s.CORSOrigins)
	s.SwaggerUser = getEnv("SWAGGER_USER", s.SwaggerUser)
	s.SwaggerPass = getEnv("SWAGGER_PASS", s.SwaggerPass)
	s.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", s.RequestTimeout)
	s.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", s.ShutdownTimeout)
	s.IdempotencyEnabled = getEnvBool("IDEMPOTENCY_ENABLED", s.IdempotencyEnabled)
	s.IdempotencyTTL = getEnvDuration("IDEMPOTENCY_TTL", s.IdempotencyTTL)

	cfg.Cache.Size = getEnvInt("CACHE_SIZE", cfg.Cache.Size)
	cfg.Cache.TTL = getEnvDuration("CACHE_TTL", cfg.Cache.TTL)

	cfg.Solver.MaxWeight = getEnvInt("SOLVER_MAX_WEIGHT", cfg.Solver.MaxWeight)
	cfg.Solver.MaxItems = getEnvInt("SOLVER_MAX_ITEMS", cfg.Solver.MaxItems)
	cfg.Solver.MaxCells = getEnvInt("SOLVER_MAX_CELLS", cfg.Solver.MaxCells)

	d := &cfg.Database
	d.URI = getEnv("MONGODB_URI", d.URI)
	d.DatabaseName = getEnv("MONGODB_DATABASE", d.DatabaseName)
	d.ActivityTTL = getEnvDuration("MONGODB_ACTIVITY_TTL", d.ActivityTTL)
	d.Enabled = getEnvBool("MONGODB_ENABLED", d.Enabled)
	d.CircuitBreakerFailureThreshold = getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", d.CircuitBreakerFailureThreshold)
	d.CircuitBreakerSuccessThreshold = getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", d.CircuitBreakerSuccessThreshold)
	d.CircuitBreakerTimeout = getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", d.CircuitBreakerTimeout)

	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Pretty = getEnvBool("LOG_PRETTY", cfg.Logging.Pretty)
}

func getEnv(key, defaultValue string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

// getEnvList parses a comma separated list, dropping blank entries.
func getEnvList(key string, defaultValue []string) []string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return defaultValue
	}
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
