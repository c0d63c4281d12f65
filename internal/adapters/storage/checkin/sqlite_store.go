package checkin

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/checkin"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new check-in store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append inserts a check-in record.
// PRE: entity has been validated
// POST: Record is persisted and immutable
func (s *SQLiteStore) Append(ctx context.Context, entity domain.CheckIn) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO check_in (id, member_id, checked_in_at) VALUES (?, ?, ?)",
		entity.ID, entity.MemberID, storage.FormatTime(entity.CheckedInAt))
	return err
}

// ListByMemberID returns a member's check-ins, newest first.
// PRE: memberID is non-empty
// POST: Returns matching records ordered descending by checked_in_at
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID string) ([]domain.CheckIn, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, member_id, checked_in_at FROM check_in WHERE member_id = ? ORDER BY checked_in_at DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.CheckIn
	for rows.Next() {
		var entity domain.CheckIn
		var atStr string
		if err := rows.Scan(&entity.ID, &entity.MemberID, &atStr); err != nil {
			return nil, err
		}
		if entity.CheckedInAt, err = storage.ParseTime(atStr); err != nil {
			return nil, fmt.Errorf("failed to parse checked_in_at: %w", err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// CountSince counts check-ins at or after the cutoff instant.
// PRE: none
// POST: Returns the number of matching records
func (s *SQLiteStore) CountSince(ctx context.Context, cutoff time.Time) (int, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM check_in WHERE checked_in_at >= ?",
		storage.FormatTime(cutoff))
	var count int
	err := row.Scan(&count)
	return count, err
}
