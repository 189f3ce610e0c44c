// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/trip-service/internal/repository"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockTripRepositoryInterface struct {
	mock.Mock
}

func (m *MockTripRepositoryInterface) Create(ctx context.Context, doc *repository.TripDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockTripRepositoryInterface) List(ctx context.Context) ([]repository.TripDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TripDocument), args.Error(1)
}

func (m *MockTripRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
