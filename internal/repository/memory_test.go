//go:build !integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryTripRepository_CreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripRepository()

	older := &TripDocument{Name: "older", CreatedAt: time.Now().Add(-time.Hour)}
	newer := &TripDocument{Name: "newer", OptimalItems: []string{"B", "A"}, TotalWeight: 5, TotalCalories: 25}

	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	assert.False(t, newer.ID.IsZero())
	assert.False(t, newer.CreatedAt.IsZero())
	assert.NotNil(t, older.OptimalItems)

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "newer", docs[0].Name)
	assert.Equal(t, []string{"B", "A"}, docs[0].OptimalItems)
	assert.Equal(t, "older", docs[1].Name)
}

func TestMemoryTripRepository_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripRepository()
	doc := &TripDocument{Name: "trip", OptimalItems: []string{"A"}}
	require.NoError(t, repo.Create(ctx, doc))

	doc.OptimalItems[0] = "mutated"
	docs, err := repo.List(ctx)
	require.NoError(t, err)
	docs[0].OptimalItems[0] = "mutated again"

	docs, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, docs[0].OptimalItems)
}

func TestMemoryTripRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripRepository()
	doc := &TripDocument{Name: "trip"}
	require.NoError(t, repo.Create(ctx, doc))

	tests := []struct {
		name    string
		id      primitive.ObjectID
		wantErr error
	}{
		{name: "existing trip", id: doc.ID},
		{name: "already deleted", id: doc.ID, wantErr: ErrNotFound},
		{name: "unknown id", id: primitive.NewObjectID(), wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Delete(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryTripRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewMemoryTripRepository()

	assert.ErrorIs(t, repo.Create(ctx, &TripDocument{Name: "x"}), context.Canceled)
	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Delete(ctx, primitive.NewObjectID()), context.Canceled)
}

func TestMemoryTripRepository_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTripRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &TripDocument{Name: "trip"})
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	docs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 50)
}
