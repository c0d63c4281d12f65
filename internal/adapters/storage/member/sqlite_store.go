package member

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gymdesk/internal/adapters/storage"
	domain "gymdesk/internal/domain/member"
)

const memberColumns = "id, name, contact, gender, plan, start_date, expiry_date, price, discount, final_amount, due_advance, purchase_date, photo"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Member by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Member, error) {
	query := "SELECT " + memberColumns + " FROM member WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	return entity, err
}

// Save persists a Member to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO member (` + memberColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, contact=excluded.contact, gender=excluded.gender,
			plan=excluded.plan, start_date=excluded.start_date, expiry_date=excluded.expiry_date,
			price=excluded.price, discount=excluded.discount, final_amount=excluded.final_amount,
			due_advance=excluded.due_advance, purchase_date=excluded.purchase_date, photo=excluded.photo`

	var purchase interface{}
	if !entity.PurchaseDate.IsZero() {
		purchase = storage.FormatTime(entity.PurchaseDate)
	}

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Contact,
		entity.Gender,
		entity.Plan,
		storage.FormatTime(entity.StartDate),
		storage.FormatTime(entity.ExpiryDate),
		entity.Price,
		entity.Discount,
		entity.FinalAmount,
		entity.DueAdvance,
		purchase,
		entity.Photo,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Delete removes a Member from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM member WHERE id = ?", id)
	return err
}

// List returns all members ordered by name.
// PRE: none
// POST: Returns the full member snapshot in a stable order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	query := "SELECT " + memberColumns + " FROM member ORDER BY name, id"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		entity, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

func scanMember(scan func(dest ...any) error) (domain.Member, error) {
	var entity domain.Member
	var gender, photo, purchase sql.NullString
	var startStr, expiryStr string

	err := scan(
		&entity.ID,
		&entity.Name,
		&entity.Contact,
		&gender,
		&entity.Plan,
		&startStr,
		&expiryStr,
		&entity.Price,
		&entity.Discount,
		&entity.FinalAmount,
		&entity.DueAdvance,
		&purchase,
		&photo,
	)
	if err != nil {
		return domain.Member{}, err
	}
	if gender.Valid {
		entity.Gender = gender.String
	}
	if photo.Valid {
		entity.Photo = photo.String
	}
	if entity.StartDate, err = storage.ParseTime(startStr); err != nil {
		return domain.Member{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	if entity.ExpiryDate, err = storage.ParseTime(expiryStr); err != nil {
		return domain.Member{}, fmt.Errorf("failed to parse expiry_date: %w", err)
	}
	if purchase.Valid && purchase.String != "" {
		t, err := storage.ParseTime(purchase.String)
		if err != nil {
			return domain.Member{}, fmt.Errorf("failed to parse purchase_date: %w", err)
		}
		entity.PurchaseDate = t
	} else {
		entity.PurchaseDate = time.Time{}
	}
	return entity, nil
}
