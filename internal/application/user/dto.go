package user

import (
	"time"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
)

// UserResponse is the flattened, read-only view of a user returned by every
// use case. UpdatedAt is nil for a user that was never mutated.
type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// NewUserResponse projects u including its last-update time.
func NewUserResponse(u *entity.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID(),
		Email:     u.Email().String(),
		Name:      u.Name(),
		Role:      u.Role().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
	if t, ok := u.UpdatedAt(); ok {
		resp.UpdatedAt = &t
	}
	return resp
}

type CreateUserRequest struct {
	Email string
	Name  string
	Role  entity.Role
}

// UpdateUserRequest carries optional changes; nil means "leave as is".
type UpdateUserRequest struct {
	Name *string
	Role *entity.Role
}

type ListUsersRequest struct {
	Page     int
	PageSize int
}

type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalCount int64          `json:"totalCount"`
	TotalPages int            `json:"totalPages"`
}
