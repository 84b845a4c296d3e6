package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of them,
// so transports can classify with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")

	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

var (
	ErrActiveSessionExists = fmt.Errorf("%w: an active session already exists", ErrConflict)
	ErrSessionCompleted    = fmt.Errorf("%w: session is already completed", ErrConflict)
	ErrUserAlreadyExists   = fmt.Errorf("%w: username or email is already taken", ErrConflict)

	ErrSessionNotFound  = fmt.Errorf("%w: session not found", ErrNotFound)
	ErrNoActiveSession  = fmt.Errorf("%w: no active session", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrEarningsNotFound = fmt.Errorf("%w: earnings not found", ErrNotFound)

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// validationError tags err as ErrValidation.
func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
