package validators

import (
	"context"

	"github.com/CemWebDev/python-todo-backend/models"
)

const (
	// FieldTitle targets the required title of a todo payload.
	FieldTitle = "title"
	// FieldCompleted targets the optional completed flag, which may be
	// omitted but not sent as null.
	FieldCompleted = "completed"
)

// TodoValidator checks todo create and replace payloads. Only the title is
// mandatory; it may be empty but must be present.
type TodoValidator struct {
}

func NewTodoValidator() Validator {
	return &TodoValidator{}
}

func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TodoRequest:
		return v.validateTodoRequest(value, fields...)
	case *models.TodoRequest:
		return v.validateTodoRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateTodoRequest(request models.TodoRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCompleted}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if request.Title == nil {
				return fieldError(FieldTitle, ErrMissingTitle)
			}
		case FieldCompleted:
			if request.CompletedIsNull() {
				return fieldError(FieldCompleted, ErrNullCompleted)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
