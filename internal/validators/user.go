package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/CemWebDev/python-todo-backend/models"
)

// Field names understood by UserValidator.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	// FieldUsername is the form field carrying the email on login.
	FieldUsername = "username"
)

const (
	// MinPasswordLength is counted in characters.
	MinPasswordLength = 6
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

// UserValidator checks registration and login payloads.
type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return fieldError(FieldEmail, err)
			}
		case FieldPassword:
			if err := validatePassword(request.Password); err != nil {
				return fieldError(FieldPassword, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// Login only checks presence: an email that would fail registration simply
// matches no account.
func (v *UserValidator) validateLoginRequest(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Email == "" {
				return fieldError(FieldUsername, ErrEmptyEmail)
			}
		case FieldPassword:
			if request.Password == "" {
				return fieldError(FieldPassword, ErrEmptyPassword)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	return nil
}
