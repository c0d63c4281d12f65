package roster

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gymdesk/internal/domain/dates"
	"gymdesk/internal/domain/member"
	"gymdesk/internal/domain/plan"
)

// Header is the export header row. Import skips the first line of any file
// unconditionally, so a roster without a header loses its first row.
const Header = "Name,Contact,Plan,StartDate,ExpiryDate,Gender"

// minFields is the number of comma fields a row needs before the semicolon
// fallback is considered.
const minFields = 5

// ParseResult carries the members recovered from a roster stream plus the
// count of rows that were rejected. Per-row failures never abort the parse;
// only an unreadable source is a hard error.
type ParseResult struct {
	Members    []member.Member
	FailedRows int
}

// Parse reads a delimited roster stream into member records.
//
// Each line after the header is split on commas; when that yields fewer than
// five fields and the line contains a semicolon, it is re-split on semicolons
// instead (comma preferred, semicolon fallback). Fields are positional:
// name, contact, plan, start date, expiry date, optional gender.
//
// A row is rejected when name or contact is blank, or the expiry date is
// blank or unparseable. A blank or unparseable start date with a valid expiry
// defaults the start to the expiry value; rosters exported by older builds
// carry such rows and round-trip through this rule.
// PRE: r is positioned at the start of the stream
// POST: returns every valid row as a Member with zero price/balance fields;
// FailedRows counts rejected rows; a read error fails the whole parse
func Parse(r io.Reader) (ParseResult, error) {
	scanner := bufio.NewScanner(r)
	var result ParseResult
	first := true

	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false // header row, always skipped
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		m, ok := parseRow(line)
		if !ok {
			result.FailedRows++
			continue
		}
		result.Members = append(result.Members, m)
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("roster source unreadable: %w", err)
	}
	return result, nil
}

// Write serializes members to the roster format: the Header line followed by
// one comma-separated row per member, dates formatted dd-MMM-yy.
/// PRE: w is writable
// POST: output re-imports with zero failed rows for members valid on
// name/contact/expiry
func Write(w io.Writer, members []member.Member) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return fmt.Errorf("roster write failed: %w", err)
	}
	for _, m := range members {
		row := strings.Join([]string{
			m.Name,
			m.Contact,
			m.Plan,
			m.StartDate.Format(dates.ExportLayout),
			m.ExpiryDate.Format(dates.ExportLayout),
			m.Gender,
		}, ",")
		if _, err := fmt.Fprintln(bw, row); err != nil {
			return fmt.Errorf("roster write failed: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("roster write failed: %w", err)
	}
	return nil
}

func parseRow(line string) (member.Member, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < minFields && strings.Contains(line, ";") {
		fields = strings.Split(line, ";")
	}

	field := func(i int) string {
		if i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	name := field(0)
	contact := field(1)
	if name == "" || contact == "" {
		return member.Member{}, false
	}

	expiry, err := dates.ParseFlexible(field(4))
	if err != nil {
		return member.Member{}, false
	}

	planName := field(2)
	if planName == "" {
		planName = plan.DefaultName
	}

	start, err := dates.ParseFlexible(field(3))
	if err != nil {
		start = expiry
	}

	return member.Member{
		Name:       name,
		Contact:    contact,
		Gender:     field(5),
		Plan:       planName,
		StartDate:  start,
		ExpiryDate: expiry,
	}, true
}
