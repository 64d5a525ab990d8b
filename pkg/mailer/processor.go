package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mailtpl "github.com/oksasatya/nexus-admin/pkg/mailer/templates"
)

// Sender delivers a rendered email.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// Processor turns queued EmailJob payloads into sent emails.
type Processor struct {
	Sender      Sender
	SendTimeout time.Duration
}

func NewProcessor(s Sender) *Processor {
	return &Processor{Sender: s, SendTimeout: 15 * time.Second}
}

// ErrPermanent marks failures that retrying the same message cannot fix.
var ErrPermanent = errors.New("permanent email failure")

// Process decodes, renders and sends one job. Errors wrapping ErrPermanent
// should be dropped; any other error is worth a requeue.
func (p *Processor) Process(ctx context.Context, body []byte) error {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return fmt.Errorf("%w: bad message: %v", ErrPermanent, err)
	}
	if err := job.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrPermanent, err)
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		job.EnsureRecipient()
		s, t, h, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			return fmt.Errorf("%w: render %s: %v", ErrPermanent, job.Template, err)
		}
		subject, text, html = s, t, h
	}

	c, cancel := context.WithTimeout(ctx, p.SendTimeout)
	defer cancel()
	if err := p.Sender.Send(c, job.To, subject, text, html); err != nil {
		return fmt.Errorf("send to %s: %w", job.To, err)
	}
	return nil
}
