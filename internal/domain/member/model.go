package member

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 100
	MaxContactLength = 20
)

// Domain errors
var (
	ErrInvalidPayment = errors.New("payment amount must be positive")
	ErrEmptyName      = errors.New("member name cannot be empty")
	ErrEmptyContact   = errors.New("member contact cannot be empty")
	ErrExpiryBefore   = errors.New("expiry date cannot be before start date")
)

// Member holds state for a gym member and their current paid period.
//
// DueAdvance is a single signed balance: negative means the member owes money,
// positive means they have paid in advance. Downstream totals depend on this
// sign convention; it is not split into separate due/advance fields.
type Member struct {
	ID           string
	Name         string
	Contact      string
	Gender       string // optional
	Plan         string // duration label, e.g. "3 Months"
	StartDate    time.Time
	ExpiryDate   time.Time // derived from StartDate at purchase time; stored and editable afterwards
	Price        float64
	Discount     float64
	FinalAmount  float64
	DueAdvance   float64
	PurchaseDate time.Time
	Photo        string // opaque reference
}

// Validate checks if the Member has valid data.
// PRE: Member struct is initialized
// POST: Returns error if validation fails, nil otherwise
// INVARIANT: ExpiryDate >= StartDate
func (m *Member) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return errors.New("member name cannot exceed 100 characters")
	}
	if strings.TrimSpace(m.Contact) == "" {
		return ErrEmptyContact
	}
	if !m.StartDate.IsZero() && !m.ExpiryDate.IsZero() && m.ExpiryDate.Before(m.StartDate) {
		return ErrExpiryBefore
	}
	return nil
}

// ApplyPayment moves the balance by amountReceived. A payment against a
// negative balance clears dues first; any surplus becomes a positive advance.
// PRE: amountReceived > 0
// POST: DueAdvance increased by amountReceived; ErrInvalidPayment and no
// mutation when amountReceived <= 0
func (m *Member) ApplyPayment(amountReceived float64) error {
	if amountReceived <= 0 {
		return ErrInvalidPayment
	}
	m.DueAdvance += amountReceived
	return nil
}

// OwesMoney returns true if the member has a negative balance.
// INVARIANT: DueAdvance is not mutated
func (m *Member) OwesMoney() bool {
	return m.DueAdvance < 0
}

// TotalDue sums the owed portion of every balance, reported as a positive
// magnitude. Advances never offset another member's dues.
// PRE: none
// POST: result >= 0
func TotalDue(members []Member) float64 {
	var due float64
	for _, m := range members {
		if m.DueAdvance < 0 {
			due -= m.DueAdvance
		}
	}
	return due
}

// TotalAdvance sums the pre-paid portion of every balance.
// PRE: none
// POST: result >= 0
func TotalAdvance(members []Member) float64 {
	var advance float64
	for _, m := range members {
		if m.DueAdvance > 0 {
			advance += m.DueAdvance
		}
	}
	return advance
}
