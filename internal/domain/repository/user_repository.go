package repository

import (
	"context"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
)

// UserRepository defines the persistence contract the user use cases rely on.
//
// GetByID, Update and Delete report a missing user with entity.ErrNotFound.
// GetByEmail returns (nil, nil) when nobody owns the address. Implementations
// enforce email uniqueness and report a clash with entity.ErrAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email entity.Email) (*entity.User, error)
	// ListPage returns one page, most recently created first. page is 1-based.
	ListPage(ctx context.Context, page, pageSize int) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email entity.Email) (bool, error)
	Count(ctx context.Context) (int64, error)
}
