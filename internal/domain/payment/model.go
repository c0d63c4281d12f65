package payment

import (
	"errors"
	"time"
)

// Payment type constants.
const (
	TypePurchase     = "membership_purchase"
	TypeDueClearance = "due_clearance"
)

// Domain errors
var (
	ErrNonPositiveAmount = errors.New("payment amount must be positive")
	ErrEmptyMemberID     = errors.New("payment must reference a member")
	ErrInvalidType       = errors.New("payment type must be membership_purchase or due_clearance")
)

// Payment is one entry in the append-only payment log. Records are never
// mutated after creation.
type Payment struct {
	ID       string
	MemberID string
	Amount   float64
	Type     string
	PaidAt   time.Time
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: Amount > 0, MemberID non-empty, Type is a known constant
func (p *Payment) Validate() error {
	if p.Amount <= 0 {
		return ErrNonPositiveAmount
	}
	if p.MemberID == "" {
		return ErrEmptyMemberID
	}
	if p.Type != TypePurchase && p.Type != TypeDueClearance {
		return ErrInvalidType
	}
	if p.PaidAt.IsZero() {
		return errors.New("payment timestamp must be set")
	}
	return nil
}
