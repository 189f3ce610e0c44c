//go:build !integration

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/trip-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type failingTripRepository struct {
	err error
}

func (f failingTripRepository) Create(context.Context, *TripDocument) error { return f.err }

func (f failingTripRepository) List(context.Context) ([]TripDocument, error) { return nil, f.err }

func (f failingTripRepository) Delete(context.Context, primitive.ObjectID) error { return f.err }

type failingActivityRepository struct {
	err error
}

func (f failingActivityRepository) CreateMany(context.Context, []*ActivityDocument) error {
	return f.err
}

func (f failingActivityRepository) Query(context.Context, ActivityQueryOptions) ([]*ActivityDocument, error) {
	return nil, f.err
}

func newTestBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             name,
		IsFailure:        IsDependencyFailure,
	})
}

func TestTripRepositoryWithCircuitBreaker_PassThrough(t *testing.T) {
	ctx := context.Background()
	repo := NewTripRepositoryWithCircuitBreaker(NewMemoryTripRepository(), newTestBreaker("trips-pass"))

	doc := &TripDocument{Name: "trip"}
	require.NoError(t, repo.Create(ctx, doc))

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	require.NoError(t, repo.Delete(ctx, doc.ID))
	assert.Equal(t, circuitbreaker.StateClosed, repo.GetCircuitBreaker().State())
}

func TestTripRepositoryWithCircuitBreaker_NotFoundDoesNotTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTripRepositoryWithCircuitBreaker(NewMemoryTripRepository(), newTestBreaker("trips-notfound"))

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, repo.Delete(ctx, primitive.NewObjectID()), ErrNotFound)
	}
	assert.Equal(t, circuitbreaker.StateClosed, repo.GetCircuitBreaker().State())
}

func TestTripRepositoryWithCircuitBreaker_OpensOnFailures(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")
	repo := NewTripRepositoryWithCircuitBreaker(failingTripRepository{err: dbErr}, newTestBreaker("trips-fail"))

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, repo.Create(ctx, &TripDocument{}), dbErr)

	_, err = repo.List(ctx)
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.ErrorIs(t, repo.Delete(ctx, primitive.NewObjectID()), circuitbreaker.ErrCircuitOpen)
}

func TestActivityRepositoryWithCircuitBreaker_DropsWritesWhenOpen(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")
	repo := NewActivityRepositoryWithCircuitBreaker(failingActivityRepository{err: dbErr}, newTestBreaker("activity-fail"))

	assert.ErrorIs(t, repo.CreateMany(ctx, []*ActivityDocument{{}}), dbErr)
	assert.ErrorIs(t, repo.CreateMany(ctx, []*ActivityDocument{{}}), dbErr)
	require.True(t, repo.GetCircuitBreaker().IsOpen())

	assert.NoError(t, repo.CreateMany(ctx, []*ActivityDocument{{}}))

	_, err := repo.Query(ctx, ActivityQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}
