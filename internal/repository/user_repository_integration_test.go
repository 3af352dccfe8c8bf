//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

func TestUserRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	user := &model.User{
		Email:    "  Planner@Example.com ",
		Password: "hash",
		Name:     "Planner",
		Roles:    []string{model.RolePlanner},
		Active:   true,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "planner@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &model.User{Email: "PLANNER@example.com", Active: true})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("find by email", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "planner@EXAMPLE.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "hash", got.Password)

		missing, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("find by id omits password", func(t *testing.T) {
		got, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got.Password)
		assert.Equal(t, []string{model.RolePlanner}, got.Roles)
	})

	t.Run("update roles", func(t *testing.T) {
		require.NoError(t, repo.UpdateRoles(ctx, user.ID, []string{model.RoleAdmin}))
		got, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{model.RoleAdmin}, got.Roles)

		assert.ErrorIs(t, repo.UpdateRoles(ctx, primitive.NewObjectID(), nil), ErrNotFound)
	})

	t.Run("deactivate", func(t *testing.T) {
		require.NoError(t, repo.Deactivate(ctx, user.ID))
		got, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
	})

	t.Run("count", func(t *testing.T) {
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
