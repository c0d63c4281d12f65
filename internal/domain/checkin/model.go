package checkin

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrEmptyMemberID = errors.New("check-in must reference a member")
	ErrZeroTimestamp = errors.New("check-in timestamp must be set")
)

// CheckIn is one entry in the append-only visit log, listed descending by
// timestamp per member.
type CheckIn struct {
	ID          string
	MemberID    string
	CheckedInAt time.Time
}

// Validate checks if the CheckIn has valid data.
// PRE: CheckIn struct is initialized
// POST: Returns error if validation fails, nil otherwise
func (c *CheckIn) Validate() error {
	if c.MemberID == "" {
		return ErrEmptyMemberID
	}
	if c.CheckedInAt.IsZero() {
		return ErrZeroTimestamp
	}
	return nil
}
