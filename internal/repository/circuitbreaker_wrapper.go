package repository

import (
	"context"
	"errors"

	"github.com/guttosm/trip-service/internal/circuitbreaker"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsDependencyFailure reports whether err indicates an unhealthy database.
// Missing documents are an expected outcome and must not trip a breaker.
func IsDependencyFailure(err error) bool {
	return !errors.Is(err, ErrNotFound)
}

// TripRepositoryWithCircuitBreaker wraps a trip repository with circuit breaker protection.
// Open circuits surface as circuitbreaker.ErrCircuitOpen.
type TripRepositoryWithCircuitBreaker struct {
	repo           TripRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewTripRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewTripRepositoryWithCircuitBreaker(repo TripRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *TripRepositoryWithCircuitBreaker {
	return &TripRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts a trip.
func (r *TripRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *TripDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
}

// List returns every trip, newest first.
func (r *TripRepositoryWithCircuitBreaker) List(ctx context.Context) ([]TripDocument, error) {
	var result []TripDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// Delete removes a trip by id.
func (r *TripRepositoryWithCircuitBreaker) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Delete(ctx, id)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *TripRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// ActivityRepositoryWithCircuitBreaker wraps an activity repository with circuit breaker protection.
// Writes are dropped silently while the circuit is open.
type ActivityRepositoryWithCircuitBreaker struct {
	repo           ActivityRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewActivityRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewActivityRepositoryWithCircuitBreaker(repo ActivityRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ActivityRepositoryWithCircuitBreaker {
	return &ActivityRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// CreateMany stores a batch of entries.
func (r *ActivityRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, docs []*ActivityDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, docs)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves entries.
func (r *ActivityRepositoryWithCircuitBreaker) Query(ctx context.Context, opts ActivityQueryOptions) ([]*ActivityDocument, error) {
	var result []*ActivityDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ActivityRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
