package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrNotFound is returned when a queried message or attachment does
	// not exist in the database.
	ErrNotFound = errors.New("record not found")

	// ErrKeyNotFound is returned when no wrapped key exists for the
	// requested room or identity.
	ErrKeyNotFound = errors.New("key not found")

	// ErrAlreadyExists is returned when an insert is skipped because a
	// record for the same identifier already exists. For room keys this
	// is the signal that a concurrent writer won the first-use race and
	// the caller must re-read instead of overwriting.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNothingSaved is returned when an INSERT completes without
	// error but the number of affected rows is zero.
	ErrNothingSaved = errors.New("no rows were saved")
)

// Low-level database operation errors, returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read-only query
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start
	// a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open
	// transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a
	// single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
