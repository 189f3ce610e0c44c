// Package cache defines the solve result cache contract.
package cache

import "github.com/guttosm/trip-service/internal/domain/model"

// Cache stores solve results keyed by request digest.
type Cache interface {
	Get(key string) (model.SolveResult, bool)
	Set(key string, value model.SolveResult)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
