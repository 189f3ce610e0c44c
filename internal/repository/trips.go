package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TripDocument is the stored form of a trip.
type TripDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	OptimalItems  []string           `bson:"optimal_items"`
	TotalWeight   int                `bson:"total_weight"`
	TotalCalories int                `bson:"total_calories"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// prepare assigns an id and creation time when missing.
func (d *TripDocument) prepare() {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	if d.OptimalItems == nil {
		d.OptimalItems = []string{}
	}
}

// TripRepository stores trips in MongoDB.
type TripRepository struct {
	collection *mongo.Collection
}

// NewTripRepository creates a trip repository on the trips collection.
func NewTripRepository(db *MongoDB) *TripRepository {
	return &TripRepository{collection: db.Trips}
}

// Create inserts a trip.
func (r *TripRepository) Create(ctx context.Context, doc *TripDocument) error {
	doc.prepare()
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

// List returns every trip, newest first.
func (r *TripRepository) List(ctx context.Context) ([]TripDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	docs := make([]TripDocument, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Delete removes a trip by id. It returns ErrNotFound when nothing was deleted.
func (r *TripRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
