package store

import (
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// constraintKind names the integrity constraint a failed statement violated.
type constraintKind int

const (
	noConstraint constraintKind = iota
	uniqueConstraint
	foreignKeyConstraint
)

// violatedConstraint reports which integrity constraint err violated, for
// both PostgreSQL and SQLite driver errors.
func violatedConstraint(err error) constraintKind {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return uniqueConstraint
	case pgerrcode.ForeignKeyViolation:
		return foreignKeyConstraint
	}

	switch sqliteError(err) {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return uniqueConstraint
	case sqlite3.ErrConstraintForeignKey:
		return foreignKeyConstraint
	}

	return noConstraint
}
