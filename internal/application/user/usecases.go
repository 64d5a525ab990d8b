package user

import (
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/internal/domain/notification"
	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

// UseCases bundles every user use case over one repository and notifier.
type UseCases struct {
	Create     *CreateUser
	Get        *GetUserByID
	List       *ListUsers
	Update     *UpdateUser
	Activate   *ActivateUser
	Deactivate *DeactivateUser
	Delete     *DeleteUser
	Welcome    *ResendWelcome
}

func NewUseCases(r repo.UserRepository, n notification.Notifier, logger *logrus.Logger) *UseCases {
	return &UseCases{
		Create:     NewCreateUser(r, n, logger),
		Get:        NewGetUserByID(r),
		List:       NewListUsers(r),
		Update:     NewUpdateUser(r),
		Activate:   NewActivateUser(r),
		Deactivate: NewDeactivateUser(r),
		Delete:     NewDeleteUser(r),
		Welcome:    NewResendWelcome(r, n),
	}
}
