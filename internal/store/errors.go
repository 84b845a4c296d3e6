package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a new user collides with an
	// existing username or email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrWorkSessionNotFound is returned when no session has the given id.
	ErrWorkSessionNotFound = errors.New("work session was not found")

	// ErrActiveSessionExists is returned when a write would leave a user
	// with two active sessions.
	ErrActiveSessionExists = errors.New("user already has an active work session")

	// ErrEarningsNotFound is returned when no earnings record exists for the
	// requested period.
	ErrEarningsNotFound = errors.New("monthly earnings were not found")

	// ErrEarningsAlreadyExist is returned by a plain insert for a period
	// that already has a record.
	ErrEarningsAlreadyExist = errors.New("monthly earnings already exist")
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

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
