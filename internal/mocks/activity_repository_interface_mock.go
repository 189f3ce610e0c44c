// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/trip-service/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockActivityRepositoryInterface struct {
	mock.Mock
}

func (m *MockActivityRepositoryInterface) CreateMany(ctx context.Context, docs []*repository.ActivityDocument) error {
	args := m.Called(ctx, docs)
	return args.Error(0)
}

func (m *MockActivityRepositoryInterface) Query(ctx context.Context, opts repository.ActivityQueryOptions) ([]*repository.ActivityDocument, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.ActivityDocument), args.Error(1)
}
