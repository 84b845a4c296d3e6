package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-tamer/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldTaskName = "task_name"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldMonth    = "month"
	FieldYear     = "year"
	FieldAmount   = "amount"
	FieldRange    = "range"
)

const (
	MaxTaskNameLength = 255
	MinPasswordLength = 6
	MinYear           = 1970
	MaxYear           = 9999
)

type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StartSessionRequest:
		return v.validateStartSession(value, fields...)
	case *models.StartSessionRequest:
		return v.validateStartSession(*value, fields...)

	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.EarningsRequest:
		return v.validateEarnings(value, fields...)
	case *models.EarningsRequest:
		return v.validateEarnings(*value, fields...)

	case models.DateRange:
		return v.validateDateRange(value, fields...)
	case *models.DateRange:
		return v.validateDateRange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStartSession(request models.StartSessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTaskName}
	}

	for _, f := range fields {
		switch f {
		case FieldTaskName:
			name := strings.TrimSpace(request.TaskName)
			if name == "" {
				return ErrEmptyTaskName
			}
			if utf8.RuneCountInString(name) > MaxTaskNameLength {
				return ErrTaskNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateRegister(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(request.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldEmail:
			if !isEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if utf8.RuneCountInString(request.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(request.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateEarnings(request models.EarningsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMonth, FieldYear, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldMonth:
			if request.Month < 1 || request.Month > 12 {
				return ErrInvalidMonth
			}
		case FieldYear:
			if request.Year < MinYear || request.Year > MaxYear {
				return ErrInvalidYear
			}
		case FieldAmount:
			if request.Amount < 0 {
				return ErrNegativeAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateDateRange(r models.DateRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRange}
	}

	for _, f := range fields {
		switch f {
		case FieldRange:
			if r.Start.After(r.End) {
				return ErrInvalidDateRange
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail only requires a non-empty local part and domain around "@".
func isEmail(s string) bool {
	local, domain, ok := strings.Cut(strings.TrimSpace(s), "@")
	return ok && local != "" && domain != ""
}
