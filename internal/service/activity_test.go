package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/guttosm/trip-service/internal/mocks"
	"github.com/guttosm/trip-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_RecordManyAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.MockActivityRepositoryInterface{}
	repo.On("CreateMany", ctx, mock.MatchedBy(func(docs []*repository.ActivityDocument) bool {
		doc := docs[0]
		return doc.Action == model.ActionCreateTrip && doc.TripID == "t1" && !doc.ID.IsZero() && !doc.Timestamp.IsZero()
	})).Return(nil)

	entry := &model.ActivityEntry{Level: "info", Message: "trip created", Action: model.ActionCreateTrip, TripID: "t1"}
	err := NewActivityService(repo).RecordMany(ctx, []*model.ActivityEntry{entry})

	require.NoError(t, err)
	assert.False(t, entry.ID.IsZero(), "id assigned on the entry")
	repo.AssertExpectations(t)
}

func TestActivityService_RecordMany(t *testing.T) {
	ctx := context.Background()

	t.Run("converts every entry", func(t *testing.T) {
		repo := &mocks.MockActivityRepositoryInterface{}
		repo.On("CreateMany", ctx, mock.MatchedBy(func(docs []*repository.ActivityDocument) bool {
			return len(docs) == 2 && docs[0].RequestID == "r1" && docs[1].RequestID == "r2"
		})).Return(nil)

		err := NewActivityService(repo).RecordMany(ctx, []*model.ActivityEntry{
			{RequestID: "r1", Action: model.ActionHTTPRequest},
			{RequestID: "r2", Action: model.ActionHTTPRequest},
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("empty batch skips the repository", func(t *testing.T) {
		repo := &mocks.MockActivityRepositoryInterface{}

		assert.NoError(t, NewActivityService(repo).RecordMany(ctx, nil))
		repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		dbErr := errors.New("bulk write failed")
		repo := &mocks.MockActivityRepositoryInterface{}
		repo.On("CreateMany", ctx, mock.Anything).Return(dbErr)

		err := NewActivityService(repo).RecordMany(ctx, []*model.ActivityEntry{{}})

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestActivityService_Query(t *testing.T) {
	ctx := context.Background()
	since := time.Now().Add(-time.Hour)

	repo := &mocks.MockActivityRepositoryInterface{}
	repo.On("Query", ctx, repository.ActivityQueryOptions{TripID: "t1", Since: &since, Limit: 5}).
		Return([]*repository.ActivityDocument{
			{Action: model.ActionDeleteTrip, TripID: "t1", StatusCode: 200},
		}, nil)

	entries, err := NewActivityService(repo).Query(ctx, model.ActivityQuery{TripID: "t1", Since: &since, Limit: 5})

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActionDeleteTrip, entries[0].Action)
	assert.Equal(t, 200, entries[0].StatusCode)
}
