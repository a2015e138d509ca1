package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/models"
)

// sqlUserRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sqlUserRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSQLUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewSQLUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating sql user repository")
	return &sqlUserRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record, assigning an id when none is set.
//
// Error handling:
//   - unique constraint violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *sqlUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = models.NewID()
	}

	query, args, err := r.db.buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isDuplicate(err) {
			log.Warn().Str("func", "*sqlUserRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).
			Str("func", "*sqlUserRepository.CreateUser").
			Stringer("classification", r.db.classify(err)).
			Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user whose email matches exactly.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound].
//   - any other scan or driver error → wrapped [ErrScanningRow].
func (r *sqlUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserByEmailQuery(email)
	if err != nil {
		log.Err(err).Str("func", "*sqlUserRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*sqlUserRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.CreatedAt = user.CreatedAt.UTC()

	return user, nil
}
