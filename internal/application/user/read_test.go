package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
)

// seed stores n users with strictly increasing creation times.
func seed(t *testing.T, repo *spyRepo, n int) []string {
	t.Helper()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		email, err := entity.NewEmail(fmt.Sprintf("user%03d@example.com", i))
		require.NoError(t, err)
		id := fmt.Sprintf("id-%03d", i)
		u := entity.ReconstructUser(id, email, fmt.Sprintf("User %03d", i), entity.RoleUser, true, base.Add(time.Duration(i)*time.Minute), nil)
		_, err = repo.UserRepository.Create(context.Background(), u)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestGetUserByID(t *testing.T) {
	repo := newSpyRepo()
	ids := seed(t, repo, 1)

	resp, err := NewGetUserByID(repo).Execute(context.Background(), ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], resp.ID)
	assert.Equal(t, "user000@example.com", resp.Email)
	assert.Nil(t, resp.UpdatedAt)

	_, err = NewGetUserByID(repo).Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestGetUserByIDIncludesUpdatedAt(t *testing.T) {
	repo := newSpyRepo()
	ids := seed(t, repo, 1)
	_, err := NewDeactivateUser(repo).Execute(context.Background(), ids[0])
	require.NoError(t, err)

	resp, err := NewGetUserByID(repo).Execute(context.Background(), ids[0])
	require.NoError(t, err)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestListUsersNormalization(t *testing.T) {
	tests := []struct {
		name         string
		req          ListUsersRequest
		wantPage     int
		wantPageSize int
	}{
		{name: "zero values use defaults", req: ListUsersRequest{}, wantPage: 1, wantPageSize: 10},
		{name: "negative values use defaults", req: ListUsersRequest{Page: -3, PageSize: -1}, wantPage: 1, wantPageSize: 10},
		{name: "page size clamped", req: ListUsersRequest{Page: 1, PageSize: 500}, wantPage: 1, wantPageSize: 100},
		{name: "page size at max", req: ListUsersRequest{Page: 2, PageSize: 100}, wantPage: 2, wantPageSize: 100},
		{name: "explicit values kept", req: ListUsersRequest{Page: 3, PageSize: 7}, wantPage: 3, wantPageSize: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := NewListUsers(newSpyRepo()).Execute(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, resp.Page)
			assert.Equal(t, tt.wantPageSize, resp.PageSize)
		})
	}
}

func TestListUsersPaging(t *testing.T) {
	repo := newSpyRepo()
	ids := seed(t, repo, 25)
	uc := NewListUsers(repo)

	first, err := uc.Execute(context.Background(), ListUsersRequest{Page: 0, PageSize: 0})
	require.NoError(t, err)
	assert.EqualValues(t, 25, first.TotalCount)
	assert.Equal(t, 3, first.TotalPages)
	require.Len(t, first.Users, 10)
	// newest first
	assert.Equal(t, ids[24], first.Users[0].ID)
	assert.Equal(t, ids[15], first.Users[9].ID)

	last, err := uc.Execute(context.Background(), ListUsersRequest{Page: 3, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, last.Users, 5)
	assert.Equal(t, ids[0], last.Users[4].ID)

	beyond, err := uc.Execute(context.Background(), ListUsersRequest{Page: 9, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond.Users)
	assert.NotNil(t, beyond.Users)
	assert.Equal(t, 3, beyond.TotalPages)
}

func TestListUsersEmpty(t *testing.T) {
	resp, err := NewListUsers(newSpyRepo()).Execute(context.Background(), ListUsersRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Users)
	assert.EqualValues(t, 0, resp.TotalCount)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestListUsersPropagatesFailures(t *testing.T) {
	for _, method := range []string{"ListPage", "Count"} {
		repo := newSpyRepo()
		repo.failOn[method] = errBoom
		_, err := NewListUsers(repo).Execute(context.Background(), ListUsersRequest{})
		assert.ErrorIs(t, err, errBoom, method)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 10))
	assert.Equal(t, 1, totalPages(1, 10))
	assert.Equal(t, 1, totalPages(10, 10))
	assert.Equal(t, 2, totalPages(11, 10))
	assert.Equal(t, 5, totalPages(500, 100))
}
