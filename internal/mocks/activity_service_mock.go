// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) RecordMany(ctx context.Context, entries []*model.ActivityEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockActivityService) Query(ctx context.Context, q model.ActivityQuery) ([]model.ActivityEntry, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ActivityEntry), args.Error(1)
}
