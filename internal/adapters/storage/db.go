package storage

import (
	"database/sql"
	"fmt"
)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Create tables
	schema := `
	CREATE TABLE IF NOT EXISTS member (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		contact TEXT NOT NULL,
		gender TEXT,
		plan TEXT NOT NULL,
		start_date TEXT NOT NULL,
		expiry_date TEXT NOT NULL,
		price REAL NOT NULL DEFAULT 0,
		discount REAL NOT NULL DEFAULT 0,
		final_amount REAL NOT NULL DEFAULT 0,
		due_advance REAL NOT NULL DEFAULT 0,
		purchase_date TEXT,
		photo TEXT
	);

	CREATE TABLE IF NOT EXISTS plan (
		name TEXT PRIMARY KEY,
		price REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS payment (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		amount REAL NOT NULL,
		type TEXT NOT NULL,
		paid_at TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES member(id)
	);

	CREATE TABLE IF NOT EXISTS check_in (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		checked_in_at TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES member(id)
	);

	CREATE TABLE IF NOT EXISTS membership_history (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		plan TEXT NOT NULL,
		start_date TEXT NOT NULL,
		expiry_date TEXT NOT NULL,
		final_amount REAL NOT NULL DEFAULT 0,
		transaction_date TEXT NOT NULL,
		FOREIGN KEY (member_id) REFERENCES member(id)
	);

	CREATE INDEX IF NOT EXISTS idx_payment_paid_at ON payment(paid_at);
	CREATE INDEX IF NOT EXISTS idx_payment_member ON payment(member_id);
	CREATE INDEX IF NOT EXISTS idx_check_in_member ON check_in(member_id, checked_in_at DESC);
	CREATE INDEX IF NOT EXISTS idx_history_member ON membership_history(member_id, transaction_date DESC);
	CREATE INDEX IF NOT EXISTS idx_member_expiry ON member(expiry_date);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
