// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

type MockRunsService struct {
	mock.Mock
}

func (m *MockRunsService) Record(ctx context.Context, run *model.OptimizationRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockRunsService) List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, int64, error) {
	args := m.Called(ctx, opts)
	var runs []model.OptimizationRun
	if v := args.Get(0); v != nil {
		runs = v.([]model.OptimizationRun)
	}
	return runs, args.Get(1).(int64), args.Error(2)
}

func (m *MockRunsService) Get(ctx context.Context, runID string) (*model.OptimizationRun, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OptimizationRun), args.Error(1)
}
