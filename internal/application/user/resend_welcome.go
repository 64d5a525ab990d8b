package user

import (
	"context"

	"github.com/oksasatya/nexus-admin/internal/domain/notification"
	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

// ResendWelcome queues the welcome message again for an existing user.
// Unlike CreateUser, notifier failures are returned to the caller.
type ResendWelcome struct {
	Repo     repo.UserRepository
	Notifier notification.Notifier
}

func NewResendWelcome(r repo.UserRepository, n notification.Notifier) *ResendWelcome {
	return &ResendWelcome{Repo: r, Notifier: n}
}

func (uc *ResendWelcome) Execute(ctx context.Context, id string) error {
	u, err := uc.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if uc.Notifier == nil {
		return nil
	}
	return uc.Notifier.SendWelcome(ctx, u.Email().String(), u.Name())
}
