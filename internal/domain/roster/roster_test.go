package roster

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"gymdesk/internal/domain/member"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// TestParse_ValidRows tests a plain comma-delimited roster.
func TestParse_ValidRows(t *testing.T) {
	in := "Name,Contact,Plan,StartDate,ExpiryDate,Gender\n" +
		"Ravi Kumar,+919876543210,3 Months,05-Jan-26,05-Apr-26,Male\n" +
		"Anita Shah,+918887776665,1 Month,10/02/2026,10/03/2026,Female\n"
	result, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FailedRows != 0 {
		t.Errorf("failedRows=%d want 0", result.FailedRows)
	}
	if len(result.Members) != 2 {
		t.Fatalf("got %d members want 2", len(result.Members))
	}
	m := result.Members[0]
	if m.Name != "Ravi Kumar" || m.Contact != "+919876543210" || m.Plan != "3 Months" || m.Gender != "Male" {
		t.Errorf("unexpected first member: %+v", m)
	}
	if !m.StartDate.Equal(localDate(2026, 1, 5)) || !m.ExpiryDate.Equal(localDate(2026, 4, 5)) {
		t.Errorf("unexpected dates: start=%v expiry=%v", m.StartDate, m.ExpiryDate)
	}
}

// TestParse_HeaderAlwaysSkipped tests that the first line is dropped even when
// it looks like a data row.
func TestParse_HeaderAlwaysSkipped(t *testing.T) {
	in := "Ravi Kumar,+919876543210,3 Months,05-Jan-26,05-Apr-26,Male\n" +
		"Anita Shah,+918887776665,1 Month,10-Feb-26,10-Mar-26,Female\n"
	result, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Members) != 1 {
		t.Fatalf("got %d members want 1 (first line is always the header)", len(result.Members))
	}
	if result.Members[0].Name != "Anita Shah" {
		t.Errorf("kept member %q, want the second line", result.Members[0].Name)
	}
}

// TestParse_SemicolonFallback tests that a semicolon-delimited row parses
// identically to the comma form.
func TestParse_SemicolonFallback(t *testing.T) {
	comma := "h\nRavi Kumar,+919876543210,3 Months,05-Jan-26,05-Apr-26,Male\n"
	semi := "h\nRavi Kumar;+919876543210;3 Months;05-Jan-26;05-Apr-26;Male\n"

	a, err := Parse(strings.NewReader(comma))
	if err != nil {
		t.Fatalf("comma parse error: %v", err)
	}
	b, err := Parse(strings.NewReader(semi))
	if err != nil {
		t.Fatalf("semicolon parse error: %v", err)
	}
	if a.FailedRows != 0 || b.FailedRows != 0 {
		t.Fatalf("failed rows: comma=%d semi=%d want 0", a.FailedRows, b.FailedRows)
	}
	if len(a.Members) != 1 || len(b.Members) != 1 {
		t.Fatalf("member counts: comma=%d semi=%d want 1", len(a.Members), len(b.Members))
	}
	if a.Members[0] != b.Members[0] {
		t.Errorf("semicolon row parsed differently:\n comma=%+v\n  semi=%+v", a.Members[0], b.Members[0])
	}
}

// TestParse_RejectsIncompleteRows tests per-row rejection without aborting.
func TestParse_RejectsIncompleteRows(t *testing.T) {
	in := "h\n" +
		"Jane Smith,+914445556666,,,\n" + // blank dates
		",+911112223334,1 Month,05-Jan-26,05-Feb-26\n" + // blank name
		"No Contact,,1 Month,05-Jan-26,05-Feb-26\n" + // blank contact
		"Bad Expiry,+911112223334,1 Month,05-Jan-26,garbage\n" + // unparseable expiry
		"Good Row,+911112223334,1 Month,05-Jan-26,05-Feb-26\n"
	result, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FailedRows != 4 {
		t.Errorf("failedRows=%d want 4", result.FailedRows)
	}
	if len(result.Members) != 1 || result.Members[0].Name != "Good Row" {
		t.Errorf("expected only the good row, got %+v", result.Members)
	}
}

// TestParse_BlankStartDefaultsToExpiry tests the preserved legacy rule.
func TestParse_BlankStartDefaultsToExpiry(t *testing.T) {
	in := "h\nRavi Kumar,+919876543210,3 Months,,05-Apr-26,Male\n"
	result, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FailedRows != 0 {
		t.Fatalf("failedRows=%d want 0", result.FailedRows)
	}
	m := result.Members[0]
	if !m.StartDate.Equal(m.ExpiryDate) {
		t.Errorf("start=%v should default to expiry=%v", m.StartDate, m.ExpiryDate)
	}
}

// TestParse_BlankPlanDefaultsToUnspecified tests the plan column default.
func TestParse_BlankPlanDefaultsToUnspecified(t *testing.T) {
	in := "h\nRavi Kumar,+919876543210,,05-Jan-26,05-Apr-26\n"
	result, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Members) != 1 {
		t.Fatalf("got %d members want 1", len(result.Members))
	}
	if result.Members[0].Plan != "Unspecified" {
		t.Errorf("plan=%q want Unspecified", result.Members[0].Plan)
	}
}

// TestParse_EmptyStream tests that an empty source yields zero rows, not an error.
func TestParse_EmptyStream(t *testing.T) {
	result, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Members) != 0 || result.FailedRows != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

// TestParse_ReadFailure tests that an unreadable source is a hard error,
// distinct from zero rows imported.
func TestParse_ReadFailure(t *testing.T) {
	_, err := Parse(failingReader{})
	if err == nil {
		t.Fatal("expected hard error for unreadable source")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

// TestRoundTrip tests that export then import preserves the exported fields at
// day precision with zero failed rows.
func TestRoundTrip(t *testing.T) {
	members := []member.Member{
		{
			Name:       "Ravi Kumar",
			Contact:    "+919876543210",
			Plan:       "3 Months",
			StartDate:  localDate(2026, 1, 5),
			ExpiryDate: localDate(2026, 4, 5),
			Gender:     "Male",
		},
		{
			Name:       "Anita Shah",
			Contact:    "+918887776665",
			Plan:       "12 Months",
			StartDate:  localDate(2025, 12, 31),
			ExpiryDate: localDate(2026, 12, 31),
			Gender:     "",
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, members); err != nil {
		t.Fatalf("write error: %v", err)
	}
	result, err := Parse(&buf)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if result.FailedRows != 0 {
		t.Fatalf("failedRows=%d want 0", result.FailedRows)
	}
	if len(result.Members) != len(members) {
		t.Fatalf("got %d members want %d", len(result.Members), len(members))
	}
	for i, want := range members {
		got := result.Members[i]
		if got.Name != want.Name || got.Contact != want.Contact || got.Plan != want.Plan || got.Gender != want.Gender {
			t.Errorf("member %d text fields differ: got %+v", i, got)
		}
		if !got.StartDate.Equal(want.StartDate) || !got.ExpiryDate.Equal(want.ExpiryDate) {
			t.Errorf("member %d dates differ: got start=%v expiry=%v", i, got.StartDate, got.ExpiryDate)
		}
	}
}

// TestWrite_HeaderOnly tests exporting an empty member set.
func TestWrite_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != Header {
		t.Errorf("got %q want header only", got)
	}
}
