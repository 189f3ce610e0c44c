package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// TripRepositoryInterface defines trip persistence.
type TripRepositoryInterface interface {
	Create(ctx context.Context, doc *TripDocument) error
	List(ctx context.Context) ([]TripDocument, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ActivityRepositoryInterface defines activity entry persistence.
type ActivityRepositoryInterface interface {
	CreateMany(ctx context.Context, docs []*ActivityDocument) error
	Query(ctx context.Context, opts ActivityQueryOptions) ([]*ActivityDocument, error)
}
