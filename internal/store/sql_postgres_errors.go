package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells repositories how a failed database operation should be reported.
type ErrorClassification int

const (
	// NonRetryable is the default classification for unrecognised errors,
	// syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient failure (connection loss, deadlock,
	// busy database). Nothing retries automatically; the value only feeds
	// logging.
	Retryable

	// DuplicateKey indicates a unique constraint violation.
	DuplicateKey
)

// String returns the lowercase name of the classification.
func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case DuplicateKey:
		return "duplicate_key"
	default:
		return "non_retryable"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. If err is nil or is not a
// PostgreSQL driver error, [NonRetryable] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Retryable codes:
//   - Class 08 — connection exceptions (08000, 08003, 08006)
//   - Class 40 — transaction rollback, serialization failure, deadlock (40000, 40001, 40P01)
//   - Class 57 — cannot connect now (57P03)
//
// DuplicateKey codes:
//   - 23505 unique_violation
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08 — connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40 — transaction rollback
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 57 — operator intervention
	case pgerrcode.CannotConnectNow: // 57P03
		return Retryable

	// Class 23 — unique violation
	case pgerrcode.UniqueViolation:
		return DuplicateKey
	}

	return NonRetryable
}

// ErrorClassificator maps driver errors onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
