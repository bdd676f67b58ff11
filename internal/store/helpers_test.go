package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/migrations"
	"github.com/jackc/pgx/v5/pgconn"
)

// newTestDB wraps a sqlmock connection in a PostgreSQL-flavoured *DB with a
// fast retry policy.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	db := &DB{
		DB:                 conn,
		dialect:            migrations.Postgres,
		errorClassificator: NewPostgresErrorClassifier(),
		retryPolicy:        retryPolicy{maxRetries: 2, base: time.Millisecond},
		logger:             logger.Nop(),
	}
	return db, mock, conn
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}
