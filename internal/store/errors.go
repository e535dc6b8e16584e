package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFormNotFound is returned when no form row matches the requested ID.
	ErrFormNotFound = errors.New("form not found")

	// ErrFormOwnedByAnother is returned when a publish targets a form that
	// already exists under a different owner.
	ErrFormOwnedByAnother = errors.New("form is owned by another owner")

	// ErrResponseNotSaved is returned when a response INSERT affects no rows
	// and no earlier copy of the envelope is stored.
	ErrResponseNotSaved = errors.New("response was not saved")

	// ErrStoreTemporary wraps driver errors the classifier marks as
	// retryable (connection loss, deadlock, busy database).
	ErrStoreTemporary = errors.New("temporary store failure")

	// ErrUnsupportedDialect is returned for a DSN no driver is wired for.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when a DML statement fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
