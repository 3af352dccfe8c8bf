package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/slotting-service/internal/circuitbreaker"
	"github.com/guttosm/slotting-service/internal/domain/model"
)

// guard runs fn through cb and returns its result.
func guard[T any](ctx context.Context, cb *circuitbreaker.CircuitBreaker, fn func() (T, error)) (T, error) {
	var result T
	err := cb.Execute(ctx, func() error {
		var fnErr error
		result, fnErr = fn()
		return fnErr
	})
	return result, err
}

// CatalogRepositoryWithCircuitBreaker wraps a catalog repository with circuit breaker protection.
type CatalogRepositoryWithCircuitBreaker struct {
	repo CatalogRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewCatalogRepositoryWithCircuitBreaker creates a guarded catalog repository.
func NewCatalogRepositoryWithCircuitBreaker(repo CatalogRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *CatalogRepositoryWithCircuitBreaker {
	return &CatalogRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *CatalogRepositoryWithCircuitBreaker) ListLocations(ctx context.Context) ([]model.Location, error) {
	return guard(ctx, r.cb, func() ([]model.Location, error) { return r.repo.ListLocations(ctx) })
}

func (r *CatalogRepositoryWithCircuitBreaker) GetLocation(ctx context.Context, name string) (*model.Location, error) {
	return guard(ctx, r.cb, func() (*model.Location, error) { return r.repo.GetLocation(ctx, name) })
}

func (r *CatalogRepositoryWithCircuitBreaker) UpsertLocation(ctx context.Context, loc *model.Location) error {
	return r.cb.Execute(ctx, func() error { return r.repo.UpsertLocation(ctx, loc) })
}

func (r *CatalogRepositoryWithCircuitBreaker) DeleteLocation(ctx context.Context, name string) error {
	return r.cb.Execute(ctx, func() error { return r.repo.DeleteLocation(ctx, name) })
}

func (r *CatalogRepositoryWithCircuitBreaker) ListPallets(ctx context.Context) ([]model.Pallet, error) {
	return guard(ctx, r.cb, func() ([]model.Pallet, error) { return r.repo.ListPallets(ctx) })
}

func (r *CatalogRepositoryWithCircuitBreaker) GetPallet(ctx context.Context, name string) (*model.Pallet, error) {
	return guard(ctx, r.cb, func() (*model.Pallet, error) { return r.repo.GetPallet(ctx, name) })
}

func (r *CatalogRepositoryWithCircuitBreaker) UpsertPallet(ctx context.Context, p *model.Pallet) error {
	return r.cb.Execute(ctx, func() error { return r.repo.UpsertPallet(ctx, p) })
}

func (r *CatalogRepositoryWithCircuitBreaker) DeletePallet(ctx context.Context, name string) error {
	return r.cb.Execute(ctx, func() error { return r.repo.DeletePallet(ctx, name) })
}

func (r *CatalogRepositoryWithCircuitBreaker) Seed(ctx context.Context, locations []model.Location, pallets []model.Pallet) (int, error) {
	return guard(ctx, r.cb, func() (int, error) { return r.repo.Seed(ctx, locations, pallets) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *CatalogRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

// RunsRepositoryWithCircuitBreaker wraps a runs repository with circuit breaker protection.
type RunsRepositoryWithCircuitBreaker struct {
	repo RunsRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewRunsRepositoryWithCircuitBreaker creates a guarded runs repository.
func NewRunsRepositoryWithCircuitBreaker(repo RunsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *RunsRepositoryWithCircuitBreaker {
	return &RunsRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *RunsRepositoryWithCircuitBreaker) Create(ctx context.Context, run *model.OptimizationRun) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, run) })
}

func (r *RunsRepositoryWithCircuitBreaker) FindByRunID(ctx context.Context, runID string) (*model.OptimizationRun, error) {
	return guard(ctx, r.cb, func() (*model.OptimizationRun, error) { return r.repo.FindByRunID(ctx, runID) })
}

func (r *RunsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, error) {
	return guard(ctx, r.cb, func() ([]model.OptimizationRun, error) { return r.repo.Query(ctx, opts) })
}

func (r *RunsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	return guard(ctx, r.cb, func() (int64, error) { return r.repo.Count(ctx, opts) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RunsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

// LogsRepositoryWithCircuitBreaker wraps a logs repository with circuit breaker protection.
// Writes are dropped silently while the circuit is open.
type LogsRepositoryWithCircuitBreaker struct {
	repo LogsRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a guarded logs repository.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.LogEntry) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, entry) }))
}

func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	return dropWhenOpen(r.cb.Execute(ctx, func() error { return r.repo.CreateMany(ctx, entries) }))
}

func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error) {
	return guard(ctx, r.cb, func() ([]*model.LogEntry, error) { return r.repo.Query(ctx, opts) })
}

func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	return guard(ctx, r.cb, func() (int64, error) { return r.repo.Count(ctx, opts) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

func dropWhenOpen(err error) error {
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// UserRepositoryWithCircuitBreaker wraps a user repository with circuit breaker protection.
type UserRepositoryWithCircuitBreaker struct {
	repo UserRepositoryInterface
	cb   *circuitbreaker.CircuitBreaker
}

// NewUserRepositoryWithCircuitBreaker creates a guarded user repository.
func NewUserRepositoryWithCircuitBreaker(repo UserRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *UserRepositoryWithCircuitBreaker {
	return &UserRepositoryWithCircuitBreaker{repo: repo, cb: cb}
}

func (r *UserRepositoryWithCircuitBreaker) Create(ctx context.Context, user *model.User) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Create(ctx, user) })
}

func (r *UserRepositoryWithCircuitBreaker) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return guard(ctx, r.cb, func() (*model.User, error) { return r.repo.FindByEmail(ctx, email) })
}

func (r *UserRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return guard(ctx, r.cb, func() (*model.User, error) { return r.repo.FindByID(ctx, id) })
}

func (r *UserRepositoryWithCircuitBreaker) UpdateRoles(ctx context.Context, id primitive.ObjectID, roles []string) error {
	return r.cb.Execute(ctx, func() error { return r.repo.UpdateRoles(ctx, id, roles) })
}

func (r *UserRepositoryWithCircuitBreaker) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	return r.cb.Execute(ctx, func() error { return r.repo.Deactivate(ctx, id) })
}

func (r *UserRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	return guard(ctx, r.cb, func() (int64, error) { return r.repo.Count(ctx) })
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *UserRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.cb
}

var (
	_ CatalogRepositoryInterface = (*CatalogRepositoryWithCircuitBreaker)(nil)
	_ RunsRepositoryInterface    = (*RunsRepositoryWithCircuitBreaker)(nil)
	_ LogsRepositoryInterface    = (*LogsRepositoryWithCircuitBreaker)(nil)
	_ UserRepositoryInterface    = (*UserRepositoryWithCircuitBreaker)(nil)
)
