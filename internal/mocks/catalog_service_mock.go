// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListLocations(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

func (m *MockCatalogService) GetLocation(ctx context.Context, name string) (model.Location, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Location), args.Error(1)
}

func (m *MockCatalogService) UpsertLocation(ctx context.Context, loc model.Location) (model.Location, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(model.Location), args.Error(1)
}

func (m *MockCatalogService) DeleteLocation(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockCatalogService) ListPallets(ctx context.Context) ([]model.Pallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pallet), args.Error(1)
}

func (m *MockCatalogService) GetPallet(ctx context.Context, name string) (model.Pallet, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Pallet), args.Error(1)
}

func (m *MockCatalogService) UpsertPallet(ctx context.Context, p model.Pallet) (model.Pallet, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Pallet), args.Error(1)
}

func (m *MockCatalogService) DeletePallet(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockCatalogService) ReadOnly() bool {
	args := m.Called()
	return args.Bool(0)
}
