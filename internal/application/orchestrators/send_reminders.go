package orchestrators

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/reminder"
)

// ReminderSender dispatches a prebuilt reminder to an external channel
// (email, SMS, WhatsApp). The orchestrator only builds the text.
type ReminderSender interface {
	Send(ctx context.Context, msg reminder.Message) error
}

// SendRemindersInput carries input for the reminder sweep.
type SendRemindersInput struct {
	IncludeExpired bool // also remind already-expired members, not just expiring-soon
}

// SendRemindersResult holds aggregate counts from a reminder run.
type SendRemindersResult struct {
	Sent    int
	Skipped int // active members or blank contacts
	Failed  int // channel errors, logged and counted
}

// SendRemindersDeps holds dependencies for SendReminders.
type SendRemindersDeps struct {
	MemberStore MemberStore
	Sender      ReminderSender
}

// ExecuteSendReminders sweeps the member snapshot, builds reminder text for
// everyone inside the expiring-soon window (and optionally the expired), and
// dispatches each through the channel. Channel failures are counted, not fatal.
// PRE: deps.Sender is configured
// POST: one message per qualifying member handed to the sender
func ExecuteSendReminders(ctx context.Context, input SendRemindersInput, deps SendRemindersDeps) (SendRemindersResult, error) {
	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return SendRemindersResult{}, err
	}

	now := timeNow()
	var result SendRemindersResult
	for _, m := range members {
		c := member.Classify(m.ExpiryDate, now)
		if c.Status == member.StatusExpired && !input.IncludeExpired {
			result.Skipped++
			continue
		}
		msg, ok := reminder.Build(m, c)
		if !ok || m.Contact == "" {
			result.Skipped++
			continue
		}
		if err := deps.Sender.Send(ctx, msg); err != nil {
			slog.Error("reminder_send_failed", "member_id", m.ID, "err", err)
			result.Failed++
			continue
		}
		result.Sent++
	}

	slog.Info("reminder_sweep",
		"sent", result.Sent,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return result, nil
}
