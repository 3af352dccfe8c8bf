// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/slotting-service/internal/domain/dto"
	"github.com/guttosm/slotting-service/internal/service"
)

type MockOptimizer struct {
	mock.Mock
}

func (m *MockOptimizer) Optimize(ctx context.Context, req dto.OptimizeRequest, caller service.Caller) (*service.OptimizeResult, error) {
	args := m.Called(ctx, req, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OptimizeResult), args.Error(1)
}
