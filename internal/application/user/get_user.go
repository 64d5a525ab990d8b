package user

import (
	"context"

	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

type GetUserByID struct {
	Repo repo.UserRepository
}

func NewGetUserByID(r repo.UserRepository) *GetUserByID {
	return &GetUserByID{Repo: r}
}

func (uc *GetUserByID) Execute(ctx context.Context, id string) (UserResponse, error) {
	u, err := uc.Repo.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return NewUserResponse(u), nil
}
