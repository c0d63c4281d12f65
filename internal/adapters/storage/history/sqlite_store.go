package history

import (
	"context"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/history"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new membership history store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append inserts a transaction record.
// PRE: entity has been validated
// POST: Record is persisted and immutable
func (s *SQLiteStore) Append(ctx context.Context, entity domain.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO membership_history (id, member_id, plan, start_date, expiry_date, final_amount, transaction_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entity.ID,
		entity.MemberID,
		entity.Plan,
		storage.FormatTime(entity.StartDate),
		storage.FormatTime(entity.ExpiryDate),
		entity.FinalAmount,
		storage.FormatTime(entity.TransactionDate),
	)
	return err
}

// ListByMemberID returns a member's transactions, newest first.
// PRE: memberID is non-empty
// POST: Returns matching records ordered descending by transaction_date
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID string) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, member_id, plan, start_date, expiry_date, final_amount, transaction_date
		FROM membership_history WHERE member_id = ? ORDER BY transaction_date DESC`,
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Record
	for rows.Next() {
		var entity domain.Record
		var startStr, expiryStr, txStr string
		if err := rows.Scan(&entity.ID, &entity.MemberID, &entity.Plan, &startStr, &expiryStr, &entity.FinalAmount, &txStr); err != nil {
			return nil, err
		}
		if entity.StartDate, err = storage.ParseTime(startStr); err != nil {
			return nil, fmt.Errorf("failed to parse start_date: %w", err)
		}
		if entity.ExpiryDate, err = storage.ParseTime(expiryStr); err != nil {
			return nil, fmt.Errorf("failed to parse expiry_date: %w", err)
		}
		if entity.TransactionDate, err = storage.ParseTime(txStr); err != nil {
			return nil, fmt.Errorf("failed to parse transaction_date: %w", err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
