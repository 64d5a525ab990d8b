package user

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/internal/domain/notification"
	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

type CreateUser struct {
	Repo     repo.UserRepository
	Notifier notification.Notifier
	Logger   *logrus.Logger
}

func NewCreateUser(r repo.UserRepository, n notification.Notifier, logger *logrus.Logger) *CreateUser {
	return &CreateUser{Repo: r, Notifier: n, Logger: logger}
}

// Execute registers a new user and sends a best-effort welcome notification.
// The returned projection never carries UpdatedAt.
func (uc *CreateUser) Execute(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	email, err := entity.NewEmail(req.Email)
	if err != nil {
		return UserResponse{}, err
	}

	exists, err := uc.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return UserResponse{}, err
	}
	if exists {
		return UserResponse{}, fmt.Errorf("%w: a user with email %q already exists", entity.ErrAlreadyExists, email)
	}

	u, err := entity.NewUser(email, req.Name, req.Role)
	if err != nil {
		return UserResponse{}, err
	}

	created, err := uc.Repo.Create(ctx, u)
	if err != nil {
		return UserResponse{}, err
	}

	if uc.Notifier != nil {
		if nErr := uc.Notifier.SendWelcome(ctx, created.Email().String(), created.Name()); nErr != nil && uc.Logger != nil {
			uc.Logger.WithError(nErr).WithField("user_id", created.ID()).Warn("failed to send welcome email")
		}
	}

	resp := NewUserResponse(created)
	resp.UpdatedAt = nil
	return resp, nil
}
