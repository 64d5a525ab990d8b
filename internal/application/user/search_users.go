package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

const (
	defaultSearchSize = 10
	maxSearchSize     = 50
)

// SearchUsers runs a full-text query against the search index. Results may
// trail the repository by the time it takes to index a write.
type SearchUsers struct {
	Index repo.UserSearchIndex
}

func NewSearchUsers(index repo.UserSearchIndex) *SearchUsers {
	return &SearchUsers{Index: index}
}

func (uc *SearchUsers) Execute(ctx context.Context, query string, size int) ([]repo.UserSearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query can't be empty", entity.ErrInvalidValue)
	}
	if size <= 0 {
		size = defaultSearchSize
	}
	if size > maxSearchSize {
		size = maxSearchSize
	}
	if uc.Index == nil {
		return []repo.UserSearchHit{}, nil
	}
	return uc.Index.Search(ctx, query, size)
}
