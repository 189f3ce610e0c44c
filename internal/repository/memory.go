package repository

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryTripRepository keeps trips in process memory. It is used when MongoDB is disabled.
type MemoryTripRepository struct {
	mu    sync.RWMutex
	trips map[primitive.ObjectID]TripDocument
}

// NewMemoryTripRepository creates an empty in-memory repository.
func NewMemoryTripRepository() *MemoryTripRepository {
	return &MemoryTripRepository{
		trips: make(map[primitive.ObjectID]TripDocument),
	}
}

// Create stores a copy of doc after assigning its id and creation time.
func (r *MemoryTripRepository) Create(ctx context.Context, doc *TripDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc.prepare()

	stored := *doc
	stored.OptimalItems = append([]string{}, doc.OptimalItems...)

	r.mu.Lock()
	r.trips[stored.ID] = stored
	r.mu.Unlock()
	return nil
}

// List returns copies of every trip, newest first.
func (r *MemoryTripRepository) List(ctx context.Context) ([]TripDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	docs := make([]TripDocument, 0, len(r.trips))
	for _, doc := range r.trips {
		doc.OptimalItems = append([]string{}, doc.OptimalItems...)
		docs = append(docs, doc)
	}
	r.mu.RUnlock()

	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		return docs[i].ID.Hex() > docs[j].ID.Hex()
	})
	return docs, nil
}

// Delete removes a trip by id.
func (r *MemoryTripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.trips[id]; !ok {
		return ErrNotFound
	}
	delete(r.trips, id)
	return nil
}
