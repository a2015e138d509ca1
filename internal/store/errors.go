package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrTodoNotFound is returned when no todo matches both the id and the
	// owner of a lookup, update or delete.
	ErrTodoNotFound = errors.New("todo was not found")

	// ErrInvalidDocumentID is returned when an id is not a valid ObjectID.
	ErrInvalidDocumentID = errors.New("invalid document id")

	// ErrUnsupportedDSN is returned by NewStorages for DSNs matching no backend.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a driver-level operation fails before any domain
// logic can be applied.
var (
	// ErrConnectingStore is returned when the backend cannot be reached at
	// startup.
	ErrConnectingStore = errors.New("error connecting to store")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or command
	// against the store fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingDocument is returned when a BSON document cannot be decoded.
	ErrDecodingDocument = errors.New("failed to decode document")

	// ErrCreatingIndexes is returned when index creation fails at startup.
	ErrCreatingIndexes = errors.New("failed to create indexes")
)
