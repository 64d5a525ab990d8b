package repository

import (
	"context"
	"time"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
)

// UserSearchHit is one match returned by a UserSearchIndex.
type UserSearchHit struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserSearchIndex is a secondary, eventually consistent full-text index over
// users. The repository stays the source of truth.
type UserSearchIndex interface {
	Index(ctx context.Context, u *entity.User) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, query string, size int) ([]UserSearchHit, error)
}
