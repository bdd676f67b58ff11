package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB together with the backend it talks to, the error
// classifier of that backend and the retry policy for transient failures.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	retryPolicy        retryPolicy
	logger             *logger.Logger
}

// NewConnectDB opens a connection pool for cfg.DSN and pings it. The backend
// is chosen by the DSN:
//   - "postgres://..." or "postgresql://..." opens PostgreSQL through pgx;
//   - "sqlite://<path>", "file:<path>" or a path ending in ".db" opens SQLite.
//
// Any other DSN fails with [ErrUnsupportedDSN].
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case isPostgresDSN(cfg.DSN):
		return NewConnectPostgres(ctx, cfg, log)
	case isSQLiteDSN(cfg.DSN):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnectDB").Msg("unsupported database DSN")
		return nil, ErrUnsupportedDSN
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func isSQLiteDSN(dsn string) bool {
	return strings.HasPrefix(dsn, sqliteScheme) || strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db")
}

// Dialect returns the backend name, one of [migrations.Postgres] or
// [migrations.SQLite].
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema of the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a squirrel statement builder using the placeholder format
// of the connected backend.
func (db *DB) builder() sq.StatementBuilderType {
	if db.dialect == migrations.Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// ping checks connectivity, retrying transient failures.
func (db *DB) ping(ctx context.Context) error {
	return db.withRetry(ctx, func(ctx context.Context) error {
		return db.PingContext(ctx)
	})
}

// newDB wraps an opened pool, applies pool limits and pings it.
func newDB(ctx context.Context, conn *sql.DB, dialect string, classifier ErrorClassificator, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	conn.SetConnMaxIdleTime(5 * time.Minute)

	db := &DB{
		DB:                 conn,
		dialect:            dialect,
		errorClassificator: classifier,
		retryPolicy:        defaultRetryPolicy,
		logger:             log,
	}

	if err := db.ping(ctx); err != nil {
		log.Err(err).Str("func", "newDB").Str("dialect", dialect).Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "newDB").Str("dialect", dialect).Msg("connected to database successfully")

	return db, nil
}
