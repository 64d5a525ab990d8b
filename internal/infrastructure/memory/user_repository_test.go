package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
)

func newUser(t *testing.T, email, name string) *entity.User {
	t.Helper()
	e, err := entity.NewEmail(email)
	require.NoError(t, err)
	u, err := entity.NewUser(e, name, entity.RoleUser)
	require.NoError(t, err)
	return u
}

func TestUserRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	u := newUser(t, "a@b.com", "Alice")

	_, err := repo.Create(ctx, u)
	require.NoError(t, err)

	_, err = repo.Create(ctx, newUser(t, "a@b.com", "Other"))
	assert.ErrorIs(t, err, entity.ErrAlreadyExists)

	got, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name())

	// mutating a returned copy does not touch the store
	require.NoError(t, got.Rename("Changed"))
	again, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Name())

	_, err = repo.Update(ctx, got)
	require.NoError(t, err)
	again, err = repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "Changed", again.Name())

	byEmail, err := repo.GetByEmail(ctx, u.Email())
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, u.ID(), byEmail.ID())

	missing, _ := entity.NewEmail("nobody@b.com")
	none, err := repo.GetByEmail(ctx, missing)
	assert.NoError(t, err)
	assert.Nil(t, none)

	exists, err := repo.ExistsByEmail(ctx, u.Email())
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, u.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, u.ID()), entity.ErrNotFound)
	_, err = repo.GetByID(ctx, u.ID())
	assert.ErrorIs(t, err, entity.ErrNotFound)
	_, err = repo.Update(ctx, u)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestUserRepositoryListPageNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, addr := range []string{"old@b.com", "mid@b.com", "new@b.com"} {
		e, err := entity.NewEmail(addr)
		require.NoError(t, err)
		u := entity.ReconstructUser(addr, e, addr, entity.RoleUser, true, base.Add(time.Duration(i)*time.Hour), nil)
		_, err = repo.Create(ctx, u)
		require.NoError(t, err)
	}

	page, err := repo.ListPage(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "new@b.com", page[0].ID())
	assert.Equal(t, "mid@b.com", page[1].ID())

	page, err = repo.ListPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "old@b.com", page[0].ID())

	page, err = repo.ListPage(ctx, 3, 2)
	require.NoError(t, err)
	assert.Empty(t, page)
}
