package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/internal/catalog"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/mocks"
	"github.com/guttosm/slotting-service/internal/repository"
	"github.com/guttosm/slotting-service/internal/service"
)

func TestStaticCatalogService(t *testing.T) {
	ctx := context.Background()
	svc := service.NewStaticCatalogService(nil)

	assert.True(t, svc.ReadOnly())

	loc, err := svc.GetLocation(ctx, "pallet rack 1")
	require.NoError(t, err)
	assert.Equal(t, "Pallet Rack 1", loc.Name)

	p, err := svc.GetPallet(ctx, "Euro")
	require.NoError(t, err)
	assert.Equal(t, 25.0, p.Weight)

	_, err = svc.GetLocation(ctx, "Attic")
	assert.ErrorIs(t, err, service.ErrLocationNotFound)
	_, err = svc.GetPallet(ctx, "Crate")
	assert.ErrorIs(t, err, service.ErrPalletNotFound)

	locations, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 10)
	pallets, err := svc.ListPallets(ctx)
	require.NoError(t, err)
	assert.Len(t, pallets, 3)
}

func TestStaticCatalogService_RejectsWrites(t *testing.T) {
	ctx := context.Background()
	svc := service.NewStaticCatalogService(catalog.Default())

	_, err := svc.UpsertLocation(ctx, model.Location{Name: "X"})
	assert.ErrorIs(t, err, service.ErrCatalogReadOnly)
	assert.ErrorIs(t, svc.DeleteLocation(ctx, "Mezzanine"), service.ErrCatalogReadOnly)
	_, err = svc.UpsertPallet(ctx, model.Pallet{Name: "X"})
	assert.ErrorIs(t, err, service.ErrCatalogReadOnly)
	assert.ErrorIs(t, svc.DeletePallet(ctx, "Euro"), service.ErrCatalogReadOnly)
}

func TestStoredCatalogService_Get(t *testing.T) {
	ctx := context.Background()
	rack := &model.Location{Name: "Rack", Dimensions: model.Dimensions{Width: 48, Depth: 40, Height: 60}, MaxWeight: 1000}

	tests := []struct {
		name    string
		lookup  string
		setup   func(*mocks.MockCatalogRepositoryInterface)
		wantErr error
	}{
		{
			name:   "found",
			lookup: " Rack ",
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("GetLocation", mock.Anything, "Rack").Return(rack, nil)
			},
		},
		{
			name:   "not found",
			lookup: "Attic",
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("GetLocation", mock.Anything, "Attic").Return(nil, repository.ErrNotFound)
			},
			wantErr: service.ErrLocationNotFound,
		},
		{
			name:   "database error",
			lookup: "Rack",
			setup: func(m *mocks.MockCatalogRepositoryInterface) {
				m.On("GetLocation", mock.Anything, "Rack").Return(nil, errors.New("timeout"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockCatalogRepositoryInterface)
			tt.setup(repo)

			loc, err := service.NewStoredCatalogService(repo).GetLocation(ctx, tt.lookup)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.name == "database error":
				assert.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrLocationNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, *rack, loc)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestStoredCatalogService_GetPallet_NotFound(t *testing.T) {
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("GetPallet", mock.Anything, "Crate").Return(nil, repository.ErrNotFound)

	_, err := service.NewStoredCatalogService(repo).GetPallet(context.Background(), "Crate")

	assert.ErrorIs(t, err, service.ErrPalletNotFound)
}

func TestStoredCatalogService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("valid location is trimmed and stored", func(t *testing.T) {
		repo := new(mocks.MockCatalogRepositoryInterface)
		repo.On("UpsertLocation", mock.Anything, mock.MatchedBy(func(l *model.Location) bool {
			return l.Name == "Dock"
		})).Return(nil)

		loc, err := service.NewStoredCatalogService(repo).UpsertLocation(ctx, model.Location{
			Name:       "  Dock ",
			Dimensions: model.Dimensions{Width: 96, Depth: 48, Height: 72},
			MaxWeight:  2000,
		})

		require.NoError(t, err)
		assert.Equal(t, "Dock", loc.Name)
		repo.AssertExpectations(t)
	})

	t.Run("invalid location is rejected", func(t *testing.T) {
		repo := new(mocks.MockCatalogRepositoryInterface)

		_, err := service.NewStoredCatalogService(repo).UpsertLocation(ctx, model.Location{
			Name:       "Dock",
			Dimensions: model.Dimensions{Width: 96, Depth: 48, Height: 72},
		})

		assert.ErrorIs(t, err, service.ErrInvalidCatalogEntry)
		repo.AssertNotCalled(t, "UpsertLocation", mock.Anything, mock.Anything)
	})

	t.Run("blank pallet name is rejected", func(t *testing.T) {
		repo := new(mocks.MockCatalogRepositoryInterface)

		_, err := service.NewStoredCatalogService(repo).UpsertPallet(ctx, model.Pallet{
			Name:       "   ",
			Dimensions: model.Dimensions{Width: 40, Depth: 40, Height: 5},
		})

		assert.ErrorIs(t, err, service.ErrInvalidCatalogEntry)
	})

	t.Run("valid pallet", func(t *testing.T) {
		repo := new(mocks.MockCatalogRepositoryInterface)
		repo.On("UpsertPallet", mock.Anything, mock.AnythingOfType("*model.Pallet")).Return(nil)

		p, err := service.NewStoredCatalogService(repo).UpsertPallet(ctx, model.Pallet{
			Name:       "Block",
			Dimensions: model.Dimensions{Width: 40, Depth: 40, Height: 5},
			Weight:     18,
		})

		require.NoError(t, err)
		assert.Equal(t, 18.0, p.Weight)
	})
}

func TestStoredCatalogService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("DeleteLocation", mock.Anything, "Dock").Return(nil)
	repo.On("DeleteLocation", mock.Anything, "Ghost").Return(repository.ErrNotFound)
	repo.On("DeletePallet", mock.Anything, "Ghost").Return(repository.ErrNotFound)
	svc := service.NewStoredCatalogService(repo)

	assert.NoError(t, svc.DeleteLocation(ctx, "Dock"))
	assert.ErrorIs(t, svc.DeleteLocation(ctx, "Ghost"), service.ErrLocationNotFound)
	assert.ErrorIs(t, svc.DeletePallet(ctx, " Ghost "), service.ErrPalletNotFound)
	assert.False(t, svc.ReadOnly())
}

func TestStoredCatalogService_Seed(t *testing.T) {
	defaults := catalog.Default()
	repo := new(mocks.MockCatalogRepositoryInterface)
	repo.On("Seed", mock.Anything, defaults.Locations(), defaults.Pallets()).Return(13, nil).Once()
	repo.On("Seed", mock.Anything, defaults.Locations(), defaults.Pallets()).Return(0, errors.New("write failed")).Once()
	svc := service.NewStoredCatalogService(repo)

	assert.NoError(t, svc.Seed(context.Background(), nil))
	assert.ErrorContains(t, svc.Seed(context.Background(), defaults), "seed catalog")
	repo.AssertExpectations(t)
}
