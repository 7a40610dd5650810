package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Creation order respects foreign keys: registrations reference both players
// and tournaments. Every statement is idempotent; the schema is ensured at
// each connection open because the target may be a fresh file.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS players (
		name TEXT PRIMARY KEY,
		created TIMESTAMP NOT NULL,
		phone TEXT NOT NULL,
		email TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS tournaments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		date DATE NOT NULL,
		surface TEXT NOT NULL CHECK (surface IN ('grass', 'beach')),
		registration_deadline DATE NOT NULL,
		created TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tournament_players (
		tournament_id INTEGER NOT NULL,
		player_name TEXT NOT NULL,
		registered_at TIMESTAMP NOT NULL,
		has_paid INTEGER NOT NULL DEFAULT 0,
		payment_date TIMESTAMP,
		PRIMARY KEY (tournament_id, player_name),
		FOREIGN KEY (tournament_id) REFERENCES tournaments (id) ON DELETE CASCADE,
		FOREIGN KEY (player_name) REFERENCES players (name) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS federation_payments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		payment_date TIMESTAMP NOT NULL,
		amount REAL NOT NULL,
		notes TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, ddl := range schema {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
