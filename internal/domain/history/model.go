package history

import (
	"errors"
	"time"
)

// Record is one membership transaction: a plan purchase or renewal.
// Appended whenever a plan is bought and never mutated; used for audit and
// reporting, not for status classification.
type Record struct {
	ID              string
	MemberID        string
	Plan            string
	StartDate       time.Time
	ExpiryDate      time.Time
	FinalAmount     float64
	TransactionDate time.Time
}

// Validate checks if the Record has valid data.
// PRE: Record struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (r *Record) Validate() error {
	if r.MemberID == "" {
		return errors.New("history record must reference a member")
	}
	if r.Plan == "" {
		return errors.New("history record must name a plan")
	}
	if r.TransactionDate.IsZero() {
		return errors.New("history record transaction date must be set")
	}
	if !r.ExpiryDate.IsZero() && r.ExpiryDate.Before(r.StartDate) {
		return errors.New("history record expiry cannot be before start")
	}
	return nil
}
