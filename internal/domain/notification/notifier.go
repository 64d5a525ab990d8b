package notification

import "context"

// Notifier delivers user-facing notifications. Callers treat its failures as
// non-fatal.
type Notifier interface {
	SendWelcome(ctx context.Context, toEmail, displayName string) error
}
