// Package migrations embeds the SQL schema of every supported database
// backend and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Supported backends. The value doubles as the directory holding the
// backend's migration files.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// gooseDialects maps a backend to the goose dialect name of its driver.
var gooseDialects = map[string]string{
	Postgres: "pgx",
	SQLite:   "sqlite3",
}

// goose keeps its base FS and dialect in package state.
var mu sync.Mutex

// Migrate applies all pending migrations of the given backend to db.
func Migrate(db *sql.DB, backend string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseDialect, ok := gooseDialects[backend]
	if !ok {
		return fmt.Errorf("migration error: unsupported backend %q", backend)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, backend); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
