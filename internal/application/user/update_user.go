package user

import (
	"context"
	"strings"

	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

type UpdateUser struct {
	Repo repo.UserRepository
}

func NewUpdateUser(r repo.UserRepository) *UpdateUser {
	return &UpdateUser{Repo: r}
}

// Execute applies the requested changes. A blank name is ignored and a role
// equal to the current one is skipped, so this path never reports a no-op
// role change.
func (uc *UpdateUser) Execute(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	u, err := uc.Repo.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		if err := u.Rename(*req.Name); err != nil {
			return UserResponse{}, err
		}
	}
	if req.Role != nil && *req.Role != u.Role() {
		if err := u.ChangeRole(*req.Role); err != nil {
			return UserResponse{}, err
		}
	}

	updated, err := uc.Repo.Update(ctx, u)
	if err != nil {
		return UserResponse{}, err
	}
	return NewUserResponse(updated), nil
}
