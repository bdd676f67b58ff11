package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

// userColumns is the column order every user query scans.
var userColumns = []string{"id", "email", "password_hash", "confirmed", "created_at"}

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Emails are
// masked before they reach the log.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new unconfirmed user and returns the stored row.
//
// The uniqueness of email is enforced by the database in the same statement,
// so two concurrent registrations with one email cannot both succeed.
//
// Error handling:
//   - unique violation → [ErrEmailAlreadyExists].
//   - any other driver-level error → [ErrExecutingStatement].
//   - scan failure → [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert("users").
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix("RETURNING id, email, password_hash, confirmed, created_at").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Confirmed, scanTime{&user.CreatedAt}); err != nil {
		if violatedConstraint(err) == uniqueConstraint {
			log.Debug().Str("func", "*userRepository.CreateUser").
				Str("email", logger.MaskEmail(email)).
				Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - any other failure → [ErrExecutingQuery].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(userColumns...).
		From("users").
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		row := r.db.QueryRowContext(ctx, query, args...)
		return row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Confirmed, scanTime{&user.CreatedAt})
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").
			Str("email", logger.MaskEmail(email)).
			Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// SetConfirmed sets confirmed = true for the user with this email. The
// UPDATE matches the row whether or not it is already confirmed, so repeated
// calls succeed.
func (r *userRepository) SetConfirmed(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update("users").
		Set("confirmed", true).
		Where("email = ?", email).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		result, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetConfirmed").
			Str("email", logger.MaskEmail(email)).
			Msg("error confirming user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
