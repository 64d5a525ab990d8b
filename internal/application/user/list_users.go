package user

import (
	"context"

	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

type ListUsers struct {
	Repo repo.UserRepository
}

func NewListUsers(r repo.UserRepository) *ListUsers {
	return &ListUsers{Repo: r}
}

// Execute returns one page of users plus pagination metadata. The page and
// the total count are read separately, so the count may lag concurrent writes.
func (uc *ListUsers) Execute(ctx context.Context, req ListUsersRequest) (ListUsersResponse, error) {
	page, pageSize := normalizePage(req.Page, req.PageSize)

	users, err := uc.Repo.ListPage(ctx, page, pageSize)
	if err != nil {
		return ListUsersResponse{}, err
	}
	total, err := uc.Repo.Count(ctx)
	if err != nil {
		return ListUsersResponse{}, err
	}

	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}

	return ListUsersResponse{
		Users:      out,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page <= 0 {
		page = defaultPage
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}
