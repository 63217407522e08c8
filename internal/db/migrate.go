package db

import (
	"database/sql"
	"fmt"
)

// migrations holds all schema statements. The store persists every
// collection and scalar as a JSON document under its namespace, mirroring
// the single key-value storage model the application was designed around.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		namespace  TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
