package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/migrations"
)

const sqliteScheme = "sqlite://"

// NewConnectSQLite opens an SQLite database. Foreign keys are always
// enforced so comments and likes on missing posts are rejected the same way
// PostgreSQL rejects them.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// a single writer avoids SQLITE_BUSY under concurrent requests
	cfg.MaxOpenConns = 1

	return newDB(ctx, conn, migrations.SQLite, NewSQLiteErrorClassifier(), cfg, log)
}

// sqliteDSN converts "sqlite://path" into a go-sqlite3 "file:" DSN and turns
// on foreign key enforcement.
func sqliteDSN(dsn string) string {
	if rest, ok := strings.CutPrefix(dsn, sqliteScheme); ok {
		dsn = "file:" + rest
	}

	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

// sqliteError returns the extended result code of err, or 0 when err does not
// come from SQLite.
func sqliteError(err error) sqlite3.ErrNoExtended {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode
	}

	return 0
}
