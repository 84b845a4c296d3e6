package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// NonRetryable is the default classification for unrecognised errors,
	// syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures (lost connection, deadlock, busy
	// database) that may succeed when the caller tries again.
	Retryable

	// UniqueViolation marks a write rejected by a unique constraint or index.
	UniqueViolation
)

// String implements fmt.Stringer for log fields.
func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case UniqueViolation:
		return "unique_violation"
	default:
		return "non_retryable"
	}
}

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
