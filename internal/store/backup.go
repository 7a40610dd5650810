package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

var backupTables = []struct {
	name    string
	columns string
	argc    int
}{
	{"players", "name, created, phone, email", 4},
	{"tournaments", "id, name, location, date, surface, registration_deadline, created", 7},
	{"tournament_players", "tournament_id, player_name, registered_at, has_paid, payment_date", 5},
	{"federation_payments", "id, player_name, payment_date, amount, notes, created_at", 6},
}

// Backup writes a consistent snapshot of the whole database to destPath,
// creating parent directories as needed. File-backed stores use the engine's
// native VACUUM INTO; cloud stores are exported table by table into a fresh
// local file. Blocks until the copy completes.
func (s *Store) Backup(ctx context.Context, destPath string) error {
	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create backup directory: %w", err)
		}
	}

	db, err := s.Open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if s.kind == KindFile {
		if _, err := db.ExecContext(ctx, `VACUUM INTO ?`, destPath); err != nil {
			return fmt.Errorf("backup database: %w", err)
		}
		return nil
	}
	return s.exportTo(ctx, db, destPath)
}

func (s *Store) exportTo(ctx context.Context, src *sql.DB, destPath string) error {
	dest, err := sql.Open("sqlite3", destPath)
	if err != nil {
		return fmt.Errorf("open backup file: %w", err)
	}
	defer dest.Close()

	if err := ensureSchema(ctx, dest); err != nil {
		return err
	}

	for _, table := range backupTables {
		if err := copyTable(ctx, src, dest, table.name, table.columns, table.argc); err != nil {
			return err
		}
	}
	return nil
}

func copyTable(ctx context.Context, src, dest *sql.DB, name, columns string, argc int) error {
	rows, err := src.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM %s", columns, name))
	if err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}
	defer rows.Close()

	placeholders := "?"
	for i := 1; i < argc; i++ {
		placeholders += ", ?"
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", name, columns, placeholders)

	for rows.Next() {
		values := make([]any, argc)
		ptrs := make([]any, argc)
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
		if _, err := dest.ExecContext(ctx, insert, values...); err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
	}
	return rows.Err()
}
