package orchestrators

import (
	"context"
	"io"
	"log/slog"

	"gymdesk/internal/domain/roster"
)

// ExportRosterInput carries the destination stream for an export.
type ExportRosterInput struct {
	Writer io.Writer
}

// ExportRosterDeps holds dependencies for the export orchestrator.
type ExportRosterDeps struct {
	MemberStore MemberStore
}

// ExecuteExportRoster writes the full member snapshot in the roster format.
// PRE: Input.Writer is writable
// POST: header plus one row per member written; returns the row count
func ExecuteExportRoster(ctx context.Context, input ExportRosterInput, deps ExportRosterDeps) (int, error) {
	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := roster.Write(input.Writer, members); err != nil {
		return 0, err
	}
	slog.Info("roster_export", "rows", len(members))
	return len(members), nil
}
