package user

import (
	"context"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

type ActivateUser struct {
	Repo repo.UserRepository
}

func NewActivateUser(r repo.UserRepository) *ActivateUser {
	return &ActivateUser{Repo: r}
}

func (uc *ActivateUser) Execute(ctx context.Context, id string) (UserResponse, error) {
	return transition(ctx, uc.Repo, id, (*entity.User).Activate)
}

type DeactivateUser struct {
	Repo repo.UserRepository
}

func NewDeactivateUser(r repo.UserRepository) *DeactivateUser {
	return &DeactivateUser{Repo: r}
}

func (uc *DeactivateUser) Execute(ctx context.Context, id string) (UserResponse, error) {
	return transition(ctx, uc.Repo, id, (*entity.User).Deactivate)
}

func transition(ctx context.Context, r repo.UserRepository, id string, apply func(*entity.User) error) (UserResponse, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	if err := apply(u); err != nil {
		return UserResponse{}, err
	}
	updated, err := r.Update(ctx, u)
	if err != nil {
		return UserResponse{}, err
	}
	return NewUserResponse(updated), nil
}
