package payment

import (
	"context"
	"fmt"
	"time"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/payment"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new payment store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Append inserts a payment record. Plain INSERT: a duplicate ID is an error,
// never an overwrite.
// PRE: entity has been validated
// POST: Record is persisted and immutable
func (s *SQLiteStore) Append(ctx context.Context, entity domain.Payment) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO payment (id, member_id, amount, type, paid_at) VALUES (?, ?, ?, ?, ?)",
		entity.ID,
		entity.MemberID,
		entity.Amount,
		entity.Type,
		storage.FormatTime(entity.PaidAt),
	)
	return err
}

// ListInRange returns payments with start <= paid_at < end, oldest first.
// PRE: end is after start
// POST: Returns matching records in chronological order
func (s *SQLiteStore) ListInRange(ctx context.Context, start, end time.Time) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, member_id, amount, type, paid_at FROM payment WHERE paid_at >= ? AND paid_at < ? ORDER BY paid_at",
		storage.FormatTime(start), storage.FormatTime(end))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListByMemberID returns a member's payments, newest first.
// PRE: memberID is non-empty
// POST: Returns matching records ordered descending by paid_at
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID string) ([]domain.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, member_id, amount, type, paid_at FROM payment WHERE member_id = ? ORDER BY paid_at DESC",
		memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanPayments(rows rowScanner) ([]domain.Payment, error) {
	var results []domain.Payment
	for rows.Next() {
		var entity domain.Payment
		var paidAtStr string
		if err := rows.Scan(&entity.ID, &entity.MemberID, &entity.Amount, &entity.Type, &paidAtStr); err != nil {
			return nil, err
		}
		var err error
		if entity.PaidAt, err = storage.ParseTime(paidAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse paid_at: %w", err)
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
