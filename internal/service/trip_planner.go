package service

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/guttosm/trip-service/internal/metrics"
	"github.com/guttosm/trip-service/internal/service/cache"
)

// Limits bounds the size of a single solve request.
// A zero field disables that limit.
type Limits struct {
	MaxWeight int
	MaxItems  int
	MaxCells  int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		MaxWeight: 100_000,
		MaxItems:  1_000,
		MaxCells:  50_000_000,
	}
}

// TripPlanner computes optimal item selections for trips.
type TripPlanner interface {
	Plan(req model.SolveRequest) (model.SolveResult, error)
	// InvalidateCache clears cached solve results.
	InvalidateCache()
}

// Option configures a TripPlannerService.
type Option func(*TripPlannerService)

// TripPlannerService implements TripPlanner on top of SolveKnapsack.
type TripPlannerService struct {
	limits Limits
	cache  cache.Cache
}

// NewTripPlannerService creates a planner with default limits and no cache.
func NewTripPlannerService(opts ...Option) *TripPlannerService {
	s := &TripPlannerService{limits: DefaultLimits()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLimits overrides the request size limits.
func WithLimits(limits Limits) Option {
	return func(s *TripPlannerService) {
		s.limits = limits
	}
}

// WithCache enables result caching with the given capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *TripPlannerService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface injects a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *TripPlannerService) {
		s.cache = c
	}
}

// Plan validates the request size, then returns a cached or freshly solved result.
func (s *TripPlannerService) Plan(req model.SolveRequest) (model.SolveResult, error) {
	if err := s.checkLimits(req); err != nil {
		metrics.RecordSolve(0, "rejected")
		return model.SolveResult{}, err
	}

	var key string
	if s.cache != nil {
		key = requestDigest(req)
		if result, ok := s.cache.Get(key); ok {
			metrics.RecordSolve(0, "cached")
			return result, nil
		}
	}

	start := time.Now()
	result, err := SolveKnapsack(req)
	duration := time.Since(start)
	if err != nil {
		metrics.RecordSolve(duration, "invalid")
		return model.SolveResult{}, err
	}

	status := "feasible"
	if result.IsEmpty() && req.MinCalories > 0 {
		status = "infeasible"
	}
	metrics.RecordSolve(duration, status)
	metrics.ObserveTableCells(req.TotalCells())

	if s.cache != nil {
		s.cache.Set(key, result)
	}

	return result, nil
}

// InvalidateCache clears the result cache.
func (s *TripPlannerService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the cache's background resources.
func (s *TripPlannerService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func (s *TripPlannerService) checkLimits(req model.SolveRequest) error {
	if s.limits.MaxWeight > 0 && req.MaxWeight > s.limits.MaxWeight {
		return fmt.Errorf("%w: %d > %d", ErrWeightBudgetTooLarge, req.MaxWeight, s.limits.MaxWeight)
	}
	if s.limits.MaxItems > 0 && len(req.Items) > s.limits.MaxItems {
		return fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(req.Items), s.limits.MaxItems)
	}
	cells := req.TotalCells()
	if cells == math.MaxInt {
		return fmt.Errorf("%w: %d items with maxWeight %d", ErrTableOverflow, len(req.Items), req.MaxWeight)
	}
	if s.limits.MaxCells > 0 && cells > s.limits.MaxCells {
		return fmt.Errorf("%w: %d > %d", ErrTableTooLarge, cells, s.limits.MaxCells)
	}
	return nil
}

// requestDigest hashes every field that affects the result, including item order.
func requestDigest(req model.SolveRequest) string {
	h := sha256.New()
	var buf [8]byte

	writeInt := func(v int) {
		binary.BigEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	writeString := func(s string) {
		writeInt(len(s))
		h.Write([]byte(s))
	}

	writeString(req.Name)
	writeInt(req.MinCalories)
	writeInt(req.MaxWeight)
	writeInt(len(req.Items))
	for _, item := range req.Items {
		writeString(item.Name)
		writeInt(item.Weight)
		writeInt(item.Calories)
	}

	return hex.EncodeToString(h.Sum(nil))
}
