package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
)

// RecordPaymentInput carries input for a due-clearance payment.
type RecordPaymentInput struct {
	MemberID string
	Amount   float64
}

// RecordPaymentDeps holds dependencies for RecordPayment.
type RecordPaymentDeps struct {
	MemberStore  MemberStore
	PaymentStore PaymentStore
	GenerateID   func() string
}

// RecordPaymentResult carries the member's balance after the payment.
type RecordPaymentResult struct {
	MemberID   string
	DueAdvance float64
}

// ExecuteRecordPayment applies a payment to a member's balance and appends
// the audit record. A non-positive amount is rejected with
// member.ErrInvalidPayment before any state is touched; the audit append is
// never skipped for an accepted payment.
// PRE: MemberID exists
// POST: DueAdvance moved by Amount (surplus becomes advance); Payment of type
// due_clearance appended; on rejection nothing is persisted
func ExecuteRecordPayment(ctx context.Context, input RecordPaymentInput, deps RecordPaymentDeps) (RecordPaymentResult, error) {
	if input.Amount <= 0 {
		return RecordPaymentResult{}, member.ErrInvalidPayment
	}

	m, err := deps.MemberStore.GetByID(ctx, input.MemberID)
	if err != nil {
		return RecordPaymentResult{}, errors.New("member not found")
	}

	if err := m.ApplyPayment(input.Amount); err != nil {
		return RecordPaymentResult{}, err
	}
	if err := deps.MemberStore.Save(ctx, m); err != nil {
		return RecordPaymentResult{}, err
	}

	now := timeNow()
	pay := payment.Payment{
		ID:       deps.GenerateID(),
		MemberID: m.ID,
		Amount:   input.Amount,
		Type:     payment.TypeDueClearance,
		PaidAt:   now,
	}
	if err := deps.PaymentStore.Append(ctx, pay); err != nil {
		return RecordPaymentResult{}, err
	}

	slog.Info("payment_recorded",
		"member_id", m.ID,
		"amount", input.Amount,
		"due_advance", m.DueAdvance,
	)

	return RecordPaymentResult{MemberID: m.ID, DueAdvance: m.DueAdvance}, nil
}
