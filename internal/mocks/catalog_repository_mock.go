// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

type MockCatalogRepositoryInterface struct {
	mock.Mock
}

func (m *MockCatalogRepositoryInterface) ListLocations(ctx context.Context) ([]model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Location), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetLocation(ctx context.Context, name string) (*model.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) UpsertLocation(ctx context.Context, loc *model.Location) error {
	args := m.Called(ctx, loc)
	return args.Error(0)
}

func (m *MockCatalogRepositoryInterface) DeleteLocation(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockCatalogRepositoryInterface) ListPallets(ctx context.Context) ([]model.Pallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pallet), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) GetPallet(ctx context.Context, name string) (*model.Pallet, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pallet), args.Error(1)
}

func (m *MockCatalogRepositoryInterface) UpsertPallet(ctx context.Context, p *model.Pallet) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCatalogRepositoryInterface) DeletePallet(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockCatalogRepositoryInterface) Seed(ctx context.Context, locations []model.Location, pallets []model.Pallet) (int, error) {
	args := m.Called(ctx, locations, pallets)
	return args.Int(0), args.Error(1)
}
