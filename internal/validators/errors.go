package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("field required")
	ErrInvalidEmail     = errors.New("value is not a valid email address")
	ErrEmptyPassword    = errors.New("field required")
	ErrPasswordTooShort = fmt.Errorf("password should have at least %d characters", MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("password should have at most %d bytes", MaxPasswordBytes)
	ErrMissingTitle     = errors.New("field required")
	ErrNullCompleted    = errors.New("value could not be parsed to a boolean")
)

// ValidationError reports which field failed and why.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}
