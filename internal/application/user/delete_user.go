package user

import (
	"context"

	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

type DeleteUser struct {
	Repo repo.UserRepository
}

func NewDeleteUser(r repo.UserRepository) *DeleteUser {
	return &DeleteUser{Repo: r}
}

func (uc *DeleteUser) Execute(ctx context.Context, id string) error {
	if _, err := uc.Repo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.Repo.Delete(ctx, id)
}
