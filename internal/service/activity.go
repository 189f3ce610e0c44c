package service

import (
	"context"
	"time"

	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/guttosm/trip-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityService persists activity entries.
type ActivityService interface {
	// RecordMany stores a batch of entries.
	RecordMany(ctx context.Context, entries []*model.ActivityEntry) error
	// Query returns entries matching q, newest first.
	Query(ctx context.Context, q model.ActivityQuery) ([]model.ActivityEntry, error)
}

// ActivityServiceImpl implements ActivityService on an activity repository.
type ActivityServiceImpl struct {
	repo repository.ActivityRepositoryInterface
}

// NewActivityService creates an activity service.
func NewActivityService(repo repository.ActivityRepositoryInterface) *ActivityServiceImpl {
	return &ActivityServiceImpl{repo: repo}
}

// RecordMany stores a batch of entries.
func (s *ActivityServiceImpl) RecordMany(ctx context.Context, entries []*model.ActivityEntry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]*repository.ActivityDocument, len(entries))
	for i, entry := range entries {
		docs[i] = activityToDocument(entry)
	}
	return s.repo.CreateMany(ctx, docs)
}

// Query returns entries matching q, newest first.
func (s *ActivityServiceImpl) Query(ctx context.Context, q model.ActivityQuery) ([]model.ActivityEntry, error) {
	docs, err := s.repo.Query(ctx, repository.ActivityQueryOptions{
		RequestID: q.RequestID,
		Action:    q.Action,
		TripID:    q.TripID,
		Since:     q.Since,
		Limit:     q.Limit,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]model.ActivityEntry, len(docs))
	for i, doc := range docs {
		entries[i] = documentToActivity(doc)
	}
	return entries, nil
}

// activityToDocument assigns id and timestamp on entry when missing.
func activityToDocument(entry *model.ActivityEntry) *repository.ActivityDocument {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	return &repository.ActivityDocument{
		ID:         entry.ID,
		Timestamp:  entry.Timestamp,
		Level:      entry.Level,
		Message:    entry.Message,
		Action:     entry.Action,
		RequestID:  entry.RequestID,
		Method:     entry.Method,
		Path:       entry.Path,
		StatusCode: entry.StatusCode,
		DurationMS: entry.DurationMS,
		IP:         entry.IP,
		UserAgent:  entry.UserAgent,
		TripID:     entry.TripID,
		Error:      entry.Error,
		Fields:     entry.Fields,
	}
}

func documentToActivity(doc *repository.ActivityDocument) model.ActivityEntry {
	return model.ActivityEntry{
		ID:         doc.ID,
		Timestamp:  doc.Timestamp,
		Level:      doc.Level,
		Message:    doc.Message,
		Action:     doc.Action,
		RequestID:  doc.RequestID,
		Method:     doc.Method,
		Path:       doc.Path,
		StatusCode: doc.StatusCode,
		DurationMS: doc.DurationMS,
		IP:         doc.IP,
		UserAgent:  doc.UserAgent,
		TripID:     doc.TripID,
		Error:      doc.Error,
		Fields:     doc.Fields,
	}
}
