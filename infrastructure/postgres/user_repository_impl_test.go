package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/domain/models"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	alice := &models.User{Name: "Alice", Email: "alice@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, alice))
	require.NotEqual(t, uuid.Nil, alice.ID)

	t.Run("lookup by id and email", func(t *testing.T) {
		got, err := repo.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		assert.False(t, got.IsAdmin)

		got, err = repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)
	})

	t.Run("missing user is ErrNotFound", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)

		_, err = repo.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("email match is exact", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "ALICE@example.com")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("email taken excludes own id", func(t *testing.T) {
		taken, err := repo.EmailTaken(ctx, "alice@example.com", uuid.Nil)
		require.NoError(t, err)
		assert.True(t, taken)

		taken, err = repo.EmailTaken(ctx, "alice@example.com", alice.ID)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("update writes zero values", func(t *testing.T) {
		alice.IsAdmin = true
		require.NoError(t, repo.Update(ctx, alice))
		alice.IsAdmin = false
		alice.Name = "Alice B"
		require.NoError(t, repo.Update(ctx, alice))

		got, err := repo.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.False(t, got.IsAdmin)
		assert.Equal(t, "Alice B", got.Name)
	})

	t.Run("update of unknown user", func(t *testing.T) {
		err := repo.Update(ctx, &models.User{ID: uuid.New(), Name: "x", Email: "x@example.com", Password: "h"})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("list and count", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.User{Name: "Bob", Email: "bob@example.com", Password: "hash"}))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}
