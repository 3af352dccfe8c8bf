package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/repository"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 200
)

// RunRecorder persists optimization run summaries.
type RunRecorder interface {
	Record(ctx context.Context, run *model.OptimizationRun) error
}

// RunsService reads and writes the optimization history.
type RunsService interface {
	RunRecorder
	List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, int64, error)
	Get(ctx context.Context, runID string) (*model.OptimizationRun, error)
}

// RunsServiceImpl implements RunsService on a runs repository.
type RunsServiceImpl struct {
	repo repository.RunsRepositoryInterface
}

// NewRunsService creates a runs service.
func NewRunsService(repo repository.RunsRepositoryInterface) *RunsServiceImpl {
	return &RunsServiceImpl{repo: repo}
}

// Record stores run.
func (s *RunsServiceImpl) Record(ctx context.Context, run *model.OptimizationRun) error {
	return s.repo.Create(ctx, run)
}

// List returns one page of runs, newest first, with the total number of matches.
// The limit defaults to 20 and is capped at 200.
func (s *RunsServiceImpl) List(ctx context.Context, opts model.RunQueryOptions) ([]model.OptimizationRun, int64, error) {
	opts.Limit = RunsPageLimit(opts.Limit)
	if opts.Skip < 0 {
		opts.Skip = 0
	}

	runs, err := s.repo.Query(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("query runs: %w", err)
	}
	total, err := s.repo.Count(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("count runs: %w", err)
	}
	return runs, total, nil
}

// RunsPageLimit returns the page size List uses for a requested limit.
func RunsPageLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultRunsLimit
	case limit > maxRunsLimit:
		return maxRunsLimit
	default:
		return limit
	}
}

// Get returns ErrRunNotFound when runID is unknown.
func (s *RunsServiceImpl) Get(ctx context.Context, runID string) (*model.OptimizationRun, error) {
	run, err := s.repo.FindByRunID(ctx, runID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrRunNotFound, runID)
	}
	return run, err
}

var _ RunsService = (*RunsServiceImpl)(nil)
