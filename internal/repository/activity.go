package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityDocument is the stored form of an activity entry.
type ActivityDocument struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty"`
	Timestamp  time.Time              `bson:"timestamp"`
	Level      string                 `bson:"level"`
	Message    string                 `bson:"message"`
	Action     string                 `bson:"action"`
	RequestID  string                 `bson:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty"`
	Path       string                 `bson:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty"`
	DurationMS int64                  `bson:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty"`
	TripID     string                 `bson:"trip_id,omitempty"`
	Error      string                 `bson:"error,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty"`
}

func (d *ActivityDocument) prepare() {
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	if d.Timestamp.IsZero() {
		d.Timestamp = time.Now().UTC()
	}
}

// ActivityQueryOptions filters activity documents.
type ActivityQueryOptions struct {
	RequestID string
	Action    string
	TripID    string
	Since     *time.Time
	Limit     int
}

func (o ActivityQueryOptions) filter() bson.M {
	filter := bson.M{}
	if o.RequestID != "" {
		filter["request_id"] = o.RequestID
	}
	if o.Action != "" {
		filter["action"] = o.Action
	}
	if o.TripID != "" {
		filter["trip_id"] = o.TripID
	}
	if o.Since != nil {
		filter["timestamp"] = bson.M{"$gte": *o.Since}
	}
	return filter
}

// ActivityRepository stores activity entries in MongoDB.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates an activity repository.
func NewActivityRepository(db *MongoDB) *ActivityRepository {
	return &ActivityRepository{collection: db.Activity}
}

// CreateMany inserts entries in one unordered bulk write.
func (r *ActivityRepository) CreateMany(ctx context.Context, docs []*ActivityDocument) error {
	if len(docs) == 0 {
		return nil
	}

	batch := make([]interface{}, len(docs))
	for i, doc := range docs {
		doc.prepare()
		batch[i] = doc
	}

	_, err := r.collection.InsertMany(ctx, batch, options.InsertMany().SetOrdered(false))
	return err
}

// Query returns matching entries, newest first.
func (r *ActivityRepository) Query(ctx context.Context, opts ActivityQueryOptions) ([]*ActivityDocument, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []*ActivityDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
