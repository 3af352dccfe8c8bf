// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

type MockRunsRepositoryInterface struct {
	mock.Mock
}

func (m *MockRunsRepositoryInterface) Create(ctx context.Context, run *model.OptimizationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunsRepositoryInterface) FindByRunID(ctx context.Context, runID string) (*model.OptimizationRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OptimizationRun), args.Error(1)
}

func (m *MockRunsRepositoryInterface) Query(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OptimizationRun), args.Error(1)
}

func (m *MockRunsRepositoryInterface) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
