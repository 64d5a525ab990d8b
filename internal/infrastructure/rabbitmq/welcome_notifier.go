package rabbitmq

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/config"
	"github.com/oksasatya/nexus-admin/internal/domain/notification"
	"github.com/oksasatya/nexus-admin/pkg/mailer"
	mailtpl "github.com/oksasatya/nexus-admin/pkg/mailer/templates"
)

// JobPublisher is the part of helpers.RabbitPublisher the notifier needs.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// WelcomeNotifier enqueues welcome emails for the email worker. With sending
// disabled it only logs.
type WelcomeNotifier struct {
	Pub            JobPublisher
	Cfg            *config.Config
	Logger         *logrus.Logger
	PublishTimeout time.Duration
}

func NewWelcomeNotifier(pub JobPublisher, cfg *config.Config, logger *logrus.Logger) *WelcomeNotifier {
	return &WelcomeNotifier{Pub: pub, Cfg: cfg, Logger: logger, PublishTimeout: 5 * time.Second}
}

func (n *WelcomeNotifier) SendWelcome(ctx context.Context, toEmail, displayName string) error {
	if n.Pub == nil || (n.Cfg != nil && !n.Cfg.MailSendEnabled) {
		if n.Logger != nil {
			n.Logger.WithField("to", toEmail).Info("email sending disabled; welcome email skipped")
		}
		return nil
	}

	job := mailer.EmailJob{
		To:       toEmail,
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(n.Cfg, displayName, toEmail, mailtpl.WithTime(time.Now())),
	}

	c, cancel := context.WithTimeout(ctx, n.PublishTimeout)
	defer cancel()
	return n.Pub.PublishJSON(c, job)
}

var _ notification.Notifier = (*WelcomeNotifier)(nil)
