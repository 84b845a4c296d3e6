package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTaskName    = errors.New("task name is required")
	ErrTaskNameTooLong  = errors.New("task name must be at most 255 characters")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrInvalidYear      = errors.New("year must be between 1970 and 9999")
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)
