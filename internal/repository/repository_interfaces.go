package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// CatalogRepositoryInterface defines location and pallet storage.
type CatalogRepositoryInterface interface {
	ListLocations(ctx context.Context) ([]model.Location, error)
	GetLocation(ctx context.Context, name string) (*model.Location, error)
	UpsertLocation(ctx context.Context, loc *model.Location) error
	DeleteLocation(ctx context.Context, name string) error
	ListPallets(ctx context.Context) ([]model.Pallet, error)
	GetPallet(ctx context.Context, name string) (*model.Pallet, error)
	UpsertPallet(ctx context.Context, p *model.Pallet) error
	DeletePallet(ctx context.Context, name string) error
	Seed(ctx context.Context, locations []model.Location, pallets []model.Pallet) (int, error)
}

// RunsRepositoryInterface defines optimization history storage.
type RunsRepositoryInterface interface {
	Create(ctx context.Context, run *model.OptimizationRun) error
	FindByRunID(ctx context.Context, runID string) (*model.OptimizationRun, error)
	Query(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error)
	Count(ctx context.Context, opts model.RunQueryOptions) (int64, error)
}

// LogsRepositoryInterface defines log entry storage.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// UserRepositoryInterface defines operator account storage.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	UpdateRoles(ctx context.Context, id primitive.ObjectID, roles []string) error
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepository)(nil)
	_ RunsRepositoryInterface    = (*RunsRepository)(nil)
	_ LogsRepositoryInterface    = (*LogsRepository)(nil)
	_ UserRepositoryInterface    = (*UserRepository)(nil)
)
