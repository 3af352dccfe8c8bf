//go:build !integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/slotting-service/internal/circuitbreaker"
	"github.com/guttosm/slotting-service/internal/domain/model"
	"github.com/guttosm/slotting-service/internal/mocks"
	"github.com/guttosm/slotting-service/internal/repository"
)

func testBreaker() *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test",
		IsExpected:       repository.IsExpected,
	})
}

func TestCatalogWrapper_PassesThrough(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockCatalogRepositoryInterface)
	want := &model.Location{Name: "Bin Deep"}
	repo.On("GetLocation", ctx, "Bin Deep").Return(want, nil)
	repo.On("GetPallet", ctx, "Nope").Return(nil, repository.ErrNotFound)

	wrapped := repository.NewCatalogRepositoryWithCircuitBreaker(repo, testBreaker())

	got, err := wrapped.GetLocation(ctx, "Bin Deep")
	require.NoError(t, err)
	assert.Same(t, want, got)

	for i := 0; i < 5; i++ {
		_, err = wrapped.GetPallet(ctx, "Nope")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	}
	assert.False(t, wrapped.GetCircuitBreaker().IsOpen(), "not-found must not trip the breaker")
	repo.AssertExpectations(t)
}

func TestRunsWrapper_OpensOnFailures(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	repo := new(mocks.MockRunsRepositoryInterface)
	repo.On("Query", ctx, mock.Anything).Return(nil, boom).Times(2)

	wrapped := repository.NewRunsRepositoryWithCircuitBreaker(repo, testBreaker())

	for i := 0; i < 2; i++ {
		_, err := wrapped.Query(ctx, model.RunQueryOptions{})
		assert.ErrorIs(t, err, boom)
	}
	_, err := wrapped.Query(ctx, model.RunQueryOptions{})
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	repo.AssertNumberOfCalls(t, "Query", 2)
}

func TestLogsWrapper_DropsWritesWhenOpen(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("timeout")
	repo := new(mocks.MockLogsRepositoryInterface)
	repo.On("CreateMany", ctx, mock.Anything).Return(boom).Times(2)

	wrapped := repository.NewLogsRepositoryWithCircuitBreaker(repo, testBreaker())
	batch := []*model.LogEntry{{Message: "x"}}

	assert.ErrorIs(t, wrapped.CreateMany(ctx, batch), boom)
	assert.ErrorIs(t, wrapped.CreateMany(ctx, batch), boom)
	assert.NoError(t, wrapped.CreateMany(ctx, batch), "open circuit drops log writes")
	assert.NoError(t, wrapped.Create(ctx, &model.LogEntry{}))
	repo.AssertNumberOfCalls(t, "CreateMany", 2)
}

func TestUserWrapper_Count(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockUserRepositoryInterface)
	repo.On("Count", ctx).Return(int64(4), nil)

	n, err := repository.NewUserRepositoryWithCircuitBreaker(repo, testBreaker()).Count(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestIsExpected(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", repository.ErrNotFound, true},
		{"wrapped duplicate", errors.Join(repository.ErrDuplicate, errors.New("E11000")), true},
		{"other", errors.New("socket closed"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repository.IsExpected(tt.err))
		})
	}
}
