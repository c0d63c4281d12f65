package plan

import (
	"context"
	"database/sql"
	"fmt"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/plan"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new plan store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByName retrieves a Plan by its duration label.
// PRE: name is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (domain.Plan, error) {
	row := s.db.QueryRowContext(ctx, "SELECT name, price FROM plan WHERE name = ?", name)

	var entity domain.Plan
	err := row.Scan(&entity.Name, &entity.Price)
	if err == sql.ErrNoRows {
		return domain.Plan{}, fmt.Errorf("plan not found: %w", err)
	}
	return entity, err
}

// Save persists a Plan (insert or price update).
// PRE: entity has been validated
// POST: Entity is persisted; names stay unique
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Plan) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO plan (name, price) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET price=excluded.price",
		entity.Name, entity.Price)
	return err
}

// List returns all plans ordered by duration.
// PRE: none
// POST: Returns plans sorted by month count ascending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Plan, error) {
	// Label text doesn't sort numerically; order by the leading month count.
	rows, err := s.db.QueryContext(ctx, "SELECT name, price FROM plan ORDER BY CAST(name AS INTEGER), name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Plan
	for rows.Next() {
		var entity domain.Plan
		if err := rows.Scan(&entity.Name, &entity.Price); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}
