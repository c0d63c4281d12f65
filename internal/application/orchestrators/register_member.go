package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gymdesk/internal/domain/dates"
	"gymdesk/internal/domain/history"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// MemberStore defines the member persistence interface used by the write-side
// orchestrators.
type MemberStore interface {
	GetByID(ctx context.Context, id string) (member.Member, error)
	Save(ctx context.Context, m member.Member) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]member.Member, error)
}

// PlanStore defines the plan lookup interface.
type PlanStore interface {
	GetByName(ctx context.Context, name string) (plan.Plan, error)
}

// PaymentStore defines the append-only payment log interface.
type PaymentStore interface {
	Append(ctx context.Context, p payment.Payment) error
}

// HistoryStore defines the append-only membership transaction log interface.
type HistoryStore interface {
	Append(ctx context.Context, r history.Record) error
}

// RegisterMemberInput carries input for member registration.
type RegisterMemberInput struct {
	Name       string
	Contact    string
	Gender     string
	Plan       string    // duration label, must exist in the plan store
	StartDate  time.Time // zero means today
	Discount   float64
	AmountPaid float64 // cash received at the desk; may be less than the final amount
	Photo      string
}

// RegisterMemberDeps holds dependencies for RegisterMember.
type RegisterMemberDeps struct {
	MemberStore  MemberStore
	PlanStore    PlanStore
	PaymentStore PaymentStore
	HistoryStore HistoryStore
	GenerateID   func() string
}

// ExecuteRegisterMember coordinates first-time registration: prices the plan,
// derives the expiry through calendar month addition, books any unpaid
// portion as dues, and appends the purchase payment and history records.
// PRE: Plan names a seeded plan; Discount <= plan price; AmountPaid >= 0
// POST: Member persisted with ExpiryDate = AddMonths(StartDate, months) and
// DueAdvance = AmountPaid - FinalAmount; purchase Payment appended when
// AmountPaid > 0; history Record always appended
// INVARIANT: ExpiryDate >= StartDate
func ExecuteRegisterMember(ctx context.Context, input RegisterMemberInput, deps RegisterMemberDeps) (member.Member, error) {
	months, err := plan.DurationMonths(input.Plan)
	if err != nil {
		return member.Member{}, err
	}
	p, err := deps.PlanStore.GetByName(ctx, input.Plan)
	if err != nil {
		return member.Member{}, err
	}
	if input.Discount < 0 || input.Discount > p.Price {
		return member.Member{}, errors.New("discount must be between zero and the plan price")
	}
	if input.AmountPaid < 0 {
		return member.Member{}, errors.New("amount paid cannot be negative")
	}

	now := timeNow()
	start := input.StartDate
	if start.IsZero() {
		start = dates.StartOfDay(now)
	}
	finalAmount := p.Price - input.Discount

	m := member.Member{
		ID:           deps.GenerateID(),
		Name:         input.Name,
		Contact:      input.Contact,
		Gender:       input.Gender,
		Plan:         input.Plan,
		StartDate:    start,
		ExpiryDate:   dates.AddMonths(start, months),
		Price:        p.Price,
		Discount:     input.Discount,
		FinalAmount:  finalAmount,
		DueAdvance:   input.AmountPaid - finalAmount,
		PurchaseDate: now,
		Photo:        input.Photo,
	}
	if err := m.Validate(); err != nil {
		return member.Member{}, err
	}

	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return member.Member{}, err
	}

	if input.AmountPaid > 0 {
		pay := payment.Payment{
			ID:       deps.GenerateID(),
			MemberID: m.ID,
			Amount:   input.AmountPaid,
			Type:     payment.TypePurchase,
			PaidAt:   now,
		}
		if err := deps.PaymentStore.Append(ctx, pay); err != nil {
			return member.Member{}, err
		}
	}

	rec := history.Record{
		ID:              deps.GenerateID(),
		MemberID:        m.ID,
		Plan:            m.Plan,
		StartDate:       m.StartDate,
		ExpiryDate:      m.ExpiryDate,
		FinalAmount:     m.FinalAmount,
		TransactionDate: now,
	}
	if err := deps.HistoryStore.Append(ctx, rec); err != nil {
		return member.Member{}, err
	}

	slog.Info("member_registered",
		"member_id", m.ID,
		"plan", m.Plan,
		"final_amount", m.FinalAmount,
		"due_advance", m.DueAdvance,
	)

	return m, nil
}
