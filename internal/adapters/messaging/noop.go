package messaging

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/reminder"
)

// NoopChannel is a no-op reminder channel for development and testing.
// It logs sends but does not actually deliver anything.
type NoopChannel struct{}

// NewNoopChannel creates a new NoopChannel.
func NewNoopChannel() *NoopChannel {
	return &NoopChannel{}
}

// Send logs the reminder but does not deliver it.
// PRE: none
// POST: returns without delivery
func (c *NoopChannel) Send(_ context.Context, msg reminder.Message) error {
	slog.Info("noop_reminder_send", "to", msg.Contact, "subject", msg.Subject)
	return nil
}
