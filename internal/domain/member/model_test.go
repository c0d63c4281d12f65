package member

import (
	"testing"
	"time"
)

var fixedTime = time.Date(2026, 1, 15, 10, 0, 0, 0, time.Local)

// TestMember_Validate_Valid tests that a well-formed member passes validation.
func TestMember_Validate_Valid(t *testing.T) {
	m := Member{
		ID:         "member-1",
		Name:       "Ravi Kumar",
		Contact:    "+919876543210",
		Plan:       "3 Months",
		StartDate:  fixedTime,
		ExpiryDate: fixedTime.AddDate(0, 3, 0),
	}
	if err := m.Validate(); err != nil {
		t.Errorf("expected valid member, got: %v", err)
	}
}

// TestMember_Validate_MissingName tests that blank name is rejected.
func TestMember_Validate_MissingName(t *testing.T) {
	m := Member{Name: "   ", Contact: "+911112223334"}
	if err := m.Validate(); err != ErrEmptyName {
		t.Errorf("expected ErrEmptyName, got: %v", err)
	}
}

// TestMember_Validate_MissingContact tests that blank contact is rejected.
func TestMember_Validate_MissingContact(t *testing.T) {
	m := Member{Name: "Ravi Kumar"}
	if err := m.Validate(); err != ErrEmptyContact {
		t.Errorf("expected ErrEmptyContact, got: %v", err)
	}
}

// TestMember_Validate_ExpiryBeforeStart tests the expiry ordering invariant.
func TestMember_Validate_ExpiryBeforeStart(t *testing.T) {
	m := Member{
		Name:       "Ravi Kumar",
		Contact:    "+911112223334",
		StartDate:  fixedTime,
		ExpiryDate: fixedTime.AddDate(0, 0, -1),
	}
	if err := m.Validate(); err != ErrExpiryBefore {
		t.Errorf("expected ErrExpiryBefore, got: %v", err)
	}
}

// TestApplyPayment_ClearsDuesIntoAdvance tests that a payment larger than the
// dues flips the balance into a positive advance.
func TestApplyPayment_ClearsDuesIntoAdvance(t *testing.T) {
	m := Member{DueAdvance: -300}
	if err := m.ApplyPayment(500); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.DueAdvance != 200 {
		t.Errorf("dueAdvance=%v want 200", m.DueAdvance)
	}
	if m.OwesMoney() {
		t.Error("member with positive balance should not owe money")
	}
}

// TestApplyPayment_RejectsNonPositive tests that zero and negative amounts are
// rejected without touching the balance.
func TestApplyPayment_RejectsNonPositive(t *testing.T) {
	for _, amount := range []float64{0, -50} {
		m := Member{DueAdvance: -300}
		if err := m.ApplyPayment(amount); err != ErrInvalidPayment {
			t.Errorf("ApplyPayment(%v): expected ErrInvalidPayment, got %v", amount, err)
		}
		if m.DueAdvance != -300 {
			t.Errorf("ApplyPayment(%v): balance changed to %v", amount, m.DueAdvance)
		}
	}
}

// TestApplyPayment_PartialLeavesDues tests that an underpayment leaves a
// smaller negative balance.
func TestApplyPayment_PartialLeavesDues(t *testing.T) {
	m := Member{DueAdvance: -300}
	if err := m.ApplyPayment(100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.DueAdvance != -200 {
		t.Errorf("dueAdvance=%v want -200", m.DueAdvance)
	}
	if !m.OwesMoney() {
		t.Error("member should still owe money")
	}
}

// TestTotals_SplitBySign tests that dues and advances aggregate independently.
func TestTotals_SplitBySign(t *testing.T) {
	members := []Member{
		{DueAdvance: -300},
		{DueAdvance: 150},
		{DueAdvance: 0},
		{DueAdvance: -50},
		{DueAdvance: 500},
	}
	if due := TotalDue(members); due != 350 {
		t.Errorf("totalDue=%v want 350", due)
	}
	if advance := TotalAdvance(members); advance != 650 {
		t.Errorf("totalAdvance=%v want 650", advance)
	}
}

// TestTotals_EmptyInput tests that totals are zero over no members.
func TestTotals_EmptyInput(t *testing.T) {
	if due := TotalDue(nil); due != 0 {
		t.Errorf("totalDue=%v want 0", due)
	}
	if advance := TotalAdvance(nil); advance != 0 {
		t.Errorf("totalAdvance=%v want 0", advance)
	}
}
