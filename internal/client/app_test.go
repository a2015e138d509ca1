package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/CemWebDev/python-todo-backend/internal/adapter"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/mock"
	"github.com/CemWebDev/python-todo-backend/models"
)

const testTodoID = "64b7f0c2a1b2c3d4e5f60719"

func newTestApp(t *testing.T) (*App, *mock.MockTodoAPI, *bytes.Buffer) {
	t.Helper()
	api := mock.NewMockTodoAPI(gomock.NewController(t))
	out := &bytes.Buffer{}
	return NewApp(api, out, logger.Nop()), api, out
}

func ptr[T any](v T) *T { return &v }

// ─────────────────────────────────────────────
// dispatch
// ─────────────────────────────────────────────

func TestRun_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no command", args: nil, want: ErrNoCommand},
		{name: "unknown command", args: []string{"purge"}, want: ErrUnknownCommand},
		{name: "login without password", args: []string{"login", "alice@example.com"}, want: ErrUsage},
		{name: "add without title", args: []string{"add"}, want: ErrUsage},
		{name: "get with extra operand", args: []string{"get", testTodoID, "x"}, want: ErrUsage},
		{name: "list with operand", args: []string{"list", "all"}, want: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, out := newTestApp(t)

			err := app.Run(context.Background(), tt.args)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, out.String())
		})
	}
}

// ─────────────────────────────────────────────
// commands
// ─────────────────────────────────────────────

func TestRun_Login_PrintsAPIKey(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().Login(gomock.Any(), "alice@example.com", "secret1").
		Return(models.LoginResponse{APIKey: "key", UserID: "64b7f0c2a1b2c3d4e5f60718", Email: "alice@example.com"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"login", "alice@example.com", "secret1"}))

	var got models.LoginResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "key", got.APIKey)
}

func TestRun_Add(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want models.TodoRequest
	}{
		{
			name: "title only",
			args: []string{"add", "buy milk"},
			want: models.TodoRequest{Title: ptr("buy milk"), Completed: ptr(false)},
		},
		{
			name: "with description",
			args: []string{"add", "buy milk", "2 litres"},
			want: models.TodoRequest{Title: ptr("buy milk"), Description: ptr("2 litres"), Completed: ptr(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, api, out := newTestApp(t)
			api.EXPECT().CreateTodo(gomock.Any(), tt.want).Return(models.Todo{ID: testTodoID, Title: "buy milk"}, nil)

			require.NoError(t, app.Run(context.Background(), tt.args))
			assert.Contains(t, out.String(), testTodoID)
		})
	}
}

func TestRun_Update_ReplacesWholesale(t *testing.T) {
	app, api, _ := newTestApp(t)
	api.EXPECT().UpdateTodo(gomock.Any(), testTodoID, models.TodoRequest{Title: ptr("buy bread"), Completed: ptr(false)}).
		Return(models.Todo{ID: testTodoID, Title: "buy bread"}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"update", testTodoID, "buy bread"}))
}

func TestRun_Done_KeepsTitleAndDescription(t *testing.T) {
	app, api, out := newTestApp(t)
	stored := models.Todo{ID: testTodoID, Title: "buy milk", Description: ptr("2 litres")}

	gomock.InOrder(
		api.EXPECT().GetTodo(gomock.Any(), testTodoID).Return(stored, nil),
		api.EXPECT().UpdateTodo(gomock.Any(), testTodoID, models.TodoRequest{
			Title:       ptr("buy milk"),
			Description: ptr("2 litres"),
			Completed:   ptr(true),
		}).Return(models.Todo{ID: testTodoID, Title: "buy milk", Description: ptr("2 litres"), Completed: true}, nil),
	)

	require.NoError(t, app.Run(context.Background(), []string{"done", testTodoID}))

	var got models.Todo
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.True(t, got.Completed)
}

func TestRun_Done_NotFound(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().GetTodo(gomock.Any(), testTodoID).Return(models.Todo{}, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"done", testTodoID})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestRun_Delete_PrintsNothing(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().DeleteTodo(gomock.Any(), testTodoID).Return(nil)

	require.NoError(t, app.Run(context.Background(), []string{"delete", testTodoID}))
	assert.Empty(t, out.String())
}

func TestRun_List_Empty(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().ListTodos(gomock.Any()).Return([]models.Todo{}, nil)

	require.NoError(t, app.Run(context.Background(), []string{"list"}))
	assert.Equal(t, "[]\n", out.String())
}

func TestRun_APIErrorIsReturned(t *testing.T) {
	app, api, out := newTestApp(t)
	api.EXPECT().ListTodos(gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	err := app.Run(context.Background(), []string{"list"})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Empty(t, out.String())
}
