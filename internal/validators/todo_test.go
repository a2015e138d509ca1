package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CemWebDev/python-todo-backend/models"
)

func strPtr(s string) *string { return &s }

func TestTodoValidator(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.TodoRequest{Title: strPtr("buy milk")}))
	assert.NoError(t, v.Validate(ctx, &models.TodoRequest{Title: strPtr("")}))
	assert.ErrorIs(t, v.Validate(ctx, models.TodoRequest{Description: strPtr("d")}), ErrMissingTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.TodoRequest{}, "due_date"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, models.RegisterRequest{}), ErrUnsupportedType)
}

func TestTodoValidator_NullCompleted(t *testing.T) {
	v := NewTodoValidator()
	ctx := context.Background()

	var request models.TodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"buy milk","completed":null}`), &request))

	err := v.Validate(ctx, request)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, FieldCompleted, verr.Field)
	assert.ErrorIs(t, err, ErrNullCompleted)

	assert.NoError(t, v.Validate(ctx, request, FieldTitle))

	require.NoError(t, json.Unmarshal([]byte(`{"title":"buy milk"}`), &request))
	assert.NoError(t, v.Validate(ctx, request))
}
