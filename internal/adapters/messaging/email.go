package messaging

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"gymdesk/internal/domain/reminder"
)

// mdRenderer is a goldmark instance configured for safe HTML output. Raw HTML
// in the reminder body is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// EmailChannel dispatches reminders over email via the Resend API. The
// reminder body is markdown; it is rendered to HTML at send time.
type EmailChannel struct {
	client *resend.Client
	from   string
}

// NewEmailChannel creates an EmailChannel with the given API key and sender
// address.
// PRE: apiKey is a valid Resend API key; from is a valid sender address
// POST: returns a ready-to-use channel
func NewEmailChannel(apiKey, from string) *EmailChannel {
	return &EmailChannel{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// Send renders the reminder and queues it for delivery.
// PRE: msg.Contact is an email address
// POST: email accepted by the provider or an error returned
func (c *EmailChannel) Send(ctx context.Context, msg reminder.Message) error {
	var body bytes.Buffer
	if err := mdRenderer.Convert([]byte(msg.Body), &body); err != nil {
		return fmt.Errorf("reminder render failed: %w", err)
	}

	sent, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{msg.Contact},
		Subject: msg.Subject,
		Html:    body.String(),
	})
	if err != nil {
		slog.Error("reminder_email_failed", "error", err, "to", msg.Contact)
		return fmt.Errorf("reminder send failed: %w", err)
	}

	slog.Info("reminder_email_sent", "message_id", sent.Id, "to", msg.Contact)
	return nil
}
