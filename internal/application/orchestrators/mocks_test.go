package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gymdesk/internal/domain/checkin"
	"gymdesk/internal/domain/history"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/payment"
	"gymdesk/internal/domain/plan"
	"gymdesk/internal/domain/reminder"
)

// fixedNow pins the orchestrator clock for deterministic tests.
var fixedNow = time.Date(2026, 3, 5, 11, 0, 0, 0, time.Local)

func stubClock() func() {
	orig := timeNow
	timeNow = func() time.Time { return fixedNow }
	return func() { timeNow = orig }
}

// mockMemberStore implements MemberStore in memory.
type mockMemberStore struct {
	byID    map[string]member.Member
	saveErr error
}

func newMockMemberStore() *mockMemberStore {
	return &mockMemberStore{byID: make(map[string]member.Member)}
}

// GetByID implements MemberStore.
// PRE: id is non-empty
// POST: returns member or error if not found
func (s *mockMemberStore) GetByID(_ context.Context, id string) (member.Member, error) {
	m, ok := s.byID[id]
	if !ok {
		return member.Member{}, errors.New("not found")
	}
	return m, nil
}

// Save implements MemberStore.
// PRE: member is valid
// POST: member is persisted by ID
func (s *mockMemberStore) Save(_ context.Context, m member.Member) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.byID[m.ID] = m
	return nil
}

// Delete implements MemberStore.
// PRE: id is non-empty
// POST: member is removed
func (s *mockMemberStore) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

// List implements MemberStore.
// PRE: none
// POST: returns all stored members ordered by name
func (s *mockMemberStore) List(_ context.Context) ([]member.Member, error) {
	var members []member.Member
	for _, m := range s.byID {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members, nil
}

// mockPlanStore implements PlanStore and SeedPlanStore in memory.
type mockPlanStore struct {
	byName map[string]plan.Plan
}

func newMockPlanStore(plans ...plan.Plan) *mockPlanStore {
	s := &mockPlanStore{byName: make(map[string]plan.Plan)}
	for _, p := range plans {
		s.byName[p.Name] = p
	}
	return s
}

// GetByName implements PlanStore.
// PRE: name is non-empty
// POST: returns plan or error if not found
func (s *mockPlanStore) GetByName(_ context.Context, name string) (plan.Plan, error) {
	p, ok := s.byName[name]
	if !ok {
		return plan.Plan{}, errors.New("plan not found")
	}
	return p, nil
}

// Save implements SeedPlanStore.
// PRE: plan is valid
// POST: plan is persisted by name
func (s *mockPlanStore) Save(_ context.Context, p plan.Plan) error {
	s.byName[p.Name] = p
	return nil
}

// mockPaymentStore records appended payments in order.
type mockPaymentStore struct {
	appended  []payment.Payment
	appendErr error
}

// Append implements PaymentStore.
// PRE: payment is valid
// POST: record is retained in append order
func (s *mockPaymentStore) Append(_ context.Context, p payment.Payment) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, p)
	return nil
}

// mockHistoryStore records appended history records in order.
type mockHistoryStore struct {
	appended []history.Record
}

// Append implements HistoryStore.
// PRE: record is valid
// POST: record is retained in append order
func (s *mockHistoryStore) Append(_ context.Context, r history.Record) error {
	s.appended = append(s.appended, r)
	return nil
}

// mockCheckInStore records appended check-ins in order.
type mockCheckInStore struct {
	appended []checkin.CheckIn
}

// Append implements CheckInStore.
// PRE: check-in is valid
// POST: record is retained in append order
func (s *mockCheckInStore) Append(_ context.Context, c checkin.CheckIn) error {
	s.appended = append(s.appended, c)
	return nil
}

// mockSender captures dispatched reminder messages.
type mockSender struct {
	sent    []reminder.Message
	sendErr error
}

// Send implements ReminderSender.
// PRE: msg has a contact
// POST: message retained unless sendErr is set
func (s *mockSender) Send(_ context.Context, msg reminder.Message) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, msg)
	return nil
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}
