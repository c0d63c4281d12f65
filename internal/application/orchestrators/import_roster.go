package orchestrators

import (
	"context"
	"io"
	"log/slog"

	"gymdesk/internal/domain/roster"
)

// ImportRosterInput carries the roster stream to import.
// PRE: Reader is positioned at the start of the file; the first line is
// treated as a header and skipped unconditionally.
type ImportRosterInput struct {
	Reader io.Reader
}

// ImportRosterResult holds aggregate counts from an import run.
type ImportRosterResult struct {
	Imported   int
	FailedRows int
}

// ImportRosterDeps holds dependencies for the import orchestrator.
type ImportRosterDeps struct {
	MemberStore MemberStore
	GenerateID  func() string
}

// ExecuteImportRoster parses a delimited roster stream and creates member
// records. Rejected rows are counted and skipped, never fatal; an unreadable
// source fails the whole import, which is a distinct outcome from an import
// of zero rows.
// PRE: Input.Reader is readable
// POST: every valid row is persisted as a new member with a generated ID and
// default price/balance fields
func ExecuteImportRoster(ctx context.Context, input ImportRosterInput, deps ImportRosterDeps) (ImportRosterResult, error) {
	parsed, err := roster.Parse(input.Reader)
	if err != nil {
		return ImportRosterResult{}, err
	}

	result := ImportRosterResult{FailedRows: parsed.FailedRows}
	for _, m := range parsed.Members {
		m.ID = deps.GenerateID()
		if err := deps.MemberStore.Save(ctx, m); err != nil {
			slog.Error("roster_import_save_failed", "name", m.Name, "err", err)
			result.FailedRows++
			continue
		}
		result.Imported++
	}

	slog.Info("roster_import",
		"imported", result.Imported,
		"failed_rows", result.FailedRows,
	)
	return result, nil
}
