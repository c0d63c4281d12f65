package reminder

import (
	"fmt"

	"gymdesk/internal/domain/dates"
	"gymdesk/internal/domain/member"
)

// Message is a prebuilt reminder for one member. Body is markdown; channel
// adapters decide whether to render it to HTML or send it as plain text.
// The engine only builds text — dispatch belongs to the messaging adapter.
type Message struct {
	Contact string
	Subject string
	Body    string
}

// Build produces the reminder text for a member given their current
// classification. Active members get no reminder (ok=false).
//
// The zero-day boundary is rendered as "expires today", never as a day count.
// PRE: c was produced by member.Classify for m.ExpiryDate
// POST: ok=false iff c.Status is active
func Build(m member.Member, c member.Classification) (Message, bool) {
	var subject, line string
	switch {
	case c.Status == member.StatusExpired:
		subject = "Your membership has expired"
		if c.DaysOverdue == 1 {
			line = "Your gym membership expired yesterday."
		} else {
			line = fmt.Sprintf("Your gym membership expired %d days ago.", c.DaysOverdue)
		}
	case c.ExpiresToday():
		subject = "Your membership expires today"
		line = "Your gym membership expires today."
	case c.Status == member.StatusExpiringSoon:
		subject = "Your membership is expiring soon"
		if c.DaysRemaining == 1 {
			line = "Your gym membership expires tomorrow."
		} else {
			line = fmt.Sprintf("Your gym membership expires in %d days.", c.DaysRemaining)
		}
	default:
		return Message{}, false
	}

	body := fmt.Sprintf("Hi %s,\n\n%s\n\nPlan: **%s**, valid until **%s**.\n",
		m.Name, line, m.Plan, m.ExpiryDate.Format(dates.ExportLayout))
	if m.OwesMoney() {
		body += fmt.Sprintf("\nOutstanding dues: **%.2f**. Please clear them at the front desk.\n", -m.DueAdvance)
	}
	body += "\nRenew at the front desk to keep training with us.\n"

	return Message{Contact: m.Contact, Subject: subject, Body: body}, true
}
