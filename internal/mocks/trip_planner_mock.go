// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/trip-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockTripPlanner struct {
	mock.Mock
}

func (m *MockTripPlanner) Plan(req model.SolveRequest) (model.SolveResult, error) {
	args := m.Called(req)
	return args.Get(0).(model.SolveResult), args.Error(1)
}

func (m *MockTripPlanner) InvalidateCache() {
	m.Called()
}
