package orchestrators

import (
	"context"
	"testing"
	"time"

	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
)

func updateDeps(members *mockMemberStore) UpdateMemberDeps {
	return UpdateMemberDeps{
		MemberStore: members,
		PlanStore:   newMockPlanStore(plan.Plan{Name: "1 Month", Price: 1500}, plan.Plan{Name: "3 Months", Price: 4000}),
	}
}

func storedMember(members *mockMemberStore) member.Member {
	m := member.Member{
		ID:         "m-1",
		Name:       "Ravi Kumar",
		Contact:    "+919876543210",
		Gender:     "Male",
		Plan:       "1 Month",
		Price:      1500,
		StartDate:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local),
		ExpiryDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local),
	}
	members.byID[m.ID] = m
	return m
}

// TestExecuteUpdateMember_EditsFields verifies blank fields are left alone
// and filled fields replace the stored values.
func TestExecuteUpdateMember_EditsFields(t *testing.T) {
	members := newMockMemberStore()
	storedMember(members)

	m, err := ExecuteUpdateMember(context.Background(), UpdateMemberInput{
		MemberID: "m-1",
		Contact:  "+910000000000",
	}, updateDeps(members))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Contact != "+910000000000" {
		t.Errorf("contact=%q not updated", m.Contact)
	}
	if m.Name != "Ravi Kumar" {
		t.Errorf("name=%q changed by blank input", m.Name)
	}
	if !m.ExpiryDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)) {
		t.Errorf("expiry=%v recomputed without a plan change", m.ExpiryDate)
	}
}

// TestExecuteUpdateMember_PlanChangeRecomputesExpiry verifies the expiry
// follows the new plan duration from the start date.
func TestExecuteUpdateMember_PlanChangeRecomputesExpiry(t *testing.T) {
	members := newMockMemberStore()
	storedMember(members)

	m, err := ExecuteUpdateMember(context.Background(), UpdateMemberInput{
		MemberID: "m-1",
		Plan:     "3 Months",
	}, updateDeps(members))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local)
	if !m.ExpiryDate.Equal(want) {
		t.Errorf("expiry=%v want %v", m.ExpiryDate, want)
	}
	if m.Price != 4000 {
		t.Errorf("price=%v want 4000", m.Price)
	}
}

// TestExecuteUpdateMember_ExpiryOverrideWins verifies an explicit expiry edit
// beats the plan-change recomputation.
func TestExecuteUpdateMember_ExpiryOverrideWins(t *testing.T) {
	members := newMockMemberStore()
	storedMember(members)
	override := time.Date(2026, 12, 25, 0, 0, 0, 0, time.Local)

	m, err := ExecuteUpdateMember(context.Background(), UpdateMemberInput{
		MemberID:   "m-1",
		Plan:       "3 Months",
		ExpiryDate: override,
	}, updateDeps(members))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.ExpiryDate.Equal(override) {
		t.Errorf("expiry=%v want override %v", m.ExpiryDate, override)
	}
}

// TestExecuteUpdateMember_RejectsExpiryBeforeStart verifies the edited record
// is still validated before persisting.
func TestExecuteUpdateMember_RejectsExpiryBeforeStart(t *testing.T) {
	members := newMockMemberStore()
	storedMember(members)

	_, err := ExecuteUpdateMember(context.Background(), UpdateMemberInput{
		MemberID:   "m-1",
		ExpiryDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
	}, updateDeps(members))
	if err == nil {
		t.Fatal("expected validation error for expiry before start")
	}
	if !members.byID["m-1"].ExpiryDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)) {
		t.Error("stored member changed despite validation failure")
	}
}

// TestExecuteDeleteMember verifies delete removes the row and unknown IDs
// fail cleanly.
func TestExecuteDeleteMember(t *testing.T) {
	members := newMockMemberStore()
	storedMember(members)

	if err := ExecuteDeleteMember(context.Background(), DeleteMemberInput{MemberID: "m-1"},
		DeleteMemberDeps{MemberStore: members}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := members.byID["m-1"]; ok {
		t.Error("member still present after delete")
	}

	if err := ExecuteDeleteMember(context.Background(), DeleteMemberInput{MemberID: "ghost"},
		DeleteMemberDeps{MemberStore: members}); err == nil {
		t.Error("expected error for unknown member")
	}
}
