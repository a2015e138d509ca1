package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/crypto"
	httphandler "github.com/CemWebDev/python-todo-backend/internal/handler/http"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
	"github.com/CemWebDev/python-todo-backend/internal/service"
	"github.com/CemWebDev/python-todo-backend/internal/store"
	"github.com/CemWebDev/python-todo-backend/models"
)

// newE2EServer starts the full HTTP stack over an in-memory SQLite store and
// returns its base URL.
func newE2EServer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	storages, err := store.NewStorages(ctx, config.Storage{DB: config.DB{DSN: "sqlite://:memory:"}}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close(ctx) })

	cfg := config.StructuredConfig{App: config.App{Version: "e2e"}}
	hasher := crypto.NewBcryptHasher(bcrypt.MinCost, nil, log)

	services, err := service.NewServices(storages, cfg, hasher, log)
	require.NoError(t, err)

	srv := httptest.NewServer(httphandler.NewHandler(services, cfg.Server, log).Init())
	t.Cleanup(srv.Close)

	return srv.URL
}

func newE2EClient(t *testing.T, baseURL string) TodoAPI {
	t.Helper()
	client, err := NewHTTPTodoClient(baseURL, 10*time.Second, logger.Nop())
	require.NoError(t, err)
	return client
}

func loggedIn(t *testing.T, baseURL, email, password string) TodoAPI {
	t.Helper()
	ctx := context.Background()
	client := newE2EClient(t, baseURL)

	_, err := client.Register(ctx, email, password)
	require.NoError(t, err)
	_, err = client.Login(ctx, email, password)
	require.NoError(t, err)

	return client
}

func strPtr(s string) *string { return &s }

func TestE2E_TodoLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()
	client := newE2EClient(t, newE2EServer(t))

	user, err := client.Register(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.True(t, models.IsValidID(user.ID))

	login, err := client.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, login.UserID)
	assert.NotEmpty(t, client.APIKey())

	created, err := client.CreateTodo(ctx, models.TodoRequest{Title: strPtr("buy milk")})
	require.NoError(t, err)
	assert.Equal(t, "buy milk", created.Title)
	assert.Equal(t, user.ID, created.UserID)
	assert.Nil(t, created.Description)
	assert.False(t, created.Completed)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	todos, err := client.ListTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, created.ID, todos[0].ID)

	require.NoError(t, client.DeleteTodo(ctx, created.ID))

	_, err = client.GetTodo(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestE2E_DuplicateRegistration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()
	client := newE2EClient(t, newE2EServer(t))

	_, err := client.Register(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = client.Register(ctx, "alice@example.com", "another")
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Email exists already.")
}

func TestE2E_WrongPassword(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()
	client := newE2EClient(t, newE2EServer(t))

	_, err := client.Register(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = client.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = client.Login(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestE2E_OwnershipIsolation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()
	baseURL := newE2EServer(t)

	alice := loggedIn(t, baseURL, "alice@example.com", "secret1")
	bob := loggedIn(t, baseURL, "bob@example.com", "secret2")

	todo, err := alice.CreateTodo(ctx, models.TodoRequest{Title: strPtr("alice only")})
	require.NoError(t, err)

	_, err = bob.GetTodo(ctx, todo.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = bob.UpdateTodo(ctx, todo.ID, models.TodoRequest{Title: strPtr("hijacked")})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, bob.DeleteTodo(ctx, todo.ID), ErrNotFound)

	bobs, err := bob.ListTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, bobs)

	still, err := alice.GetTodo(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice only", still.Title)
}

func TestE2E_UpdateReplacesWholesale(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()
	client := loggedIn(t, newE2EServer(t), "alice@example.com", "secret1")

	done := true
	created, err := client.CreateTodo(ctx, models.TodoRequest{
		Title:       strPtr("buy milk"),
		Description: strPtr("2 litres"),
		Completed:   &done,
	})
	require.NoError(t, err)

	updated, err := client.UpdateTodo(ctx, created.ID, models.TodoRequest{Title: strPtr("buy bread")})
	require.NoError(t, err)

	assert.Equal(t, "buy bread", updated.Title)
	assert.Nil(t, updated.Description)
	assert.False(t, updated.Completed)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestE2E_AuthFailures(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()
	client := newE2EClient(t, newE2EServer(t))

	_, err := client.ListTodos(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "API key is missing")

	client.SetAPIKey("%%%not-base64%%%")
	_, err = client.ListTodos(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid API key format")

	// well-formed key for an account that does not exist
	client.SetAPIKey("Z2hvc3RAZXhhbXBsZS5jb206NjRiN2YwYzJhMWIyYzNkNGU1ZjYwNzE4")
	_, err = client.ListTodos(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestE2E_InvalidInput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	ctx := context.Background()
	client := newE2EClient(t, newE2EServer(t))

	_, err := client.Register(ctx, "not-an-email", "secret1")
	assert.ErrorIs(t, err, ErrUnprocessable)

	_, err = client.Register(ctx, "carol@example.com", "short")
	assert.ErrorIs(t, err, ErrUnprocessable)

	authed := loggedIn(t, newE2EServer(t), "alice@example.com", "secret1")

	_, err = authed.CreateTodo(ctx, models.TodoRequest{})
	assert.ErrorIs(t, err, ErrUnprocessable)

	_, err = authed.GetTodo(ctx, "not-an-id")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestE2E_NullCompletedIsRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	baseURL := newE2EServer(t)
	authed := loggedIn(t, baseURL, "alice@example.com", "secret1")

	post := func(body string) *resty.Response {
		resp, err := resty.New().R().
			SetHeader(apiKeyHeader, authed.APIKey()).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post(baseURL + "/todos")
		require.NoError(t, err)
		return resp
	}

	assert.Equal(t, http.StatusUnprocessableEntity, post(`{"title":"buy milk","completed":null}`).StatusCode())
	assert.Equal(t, http.StatusOK, post(`{"title":"buy milk","description":null}`).StatusCode())
	assert.Equal(t, http.StatusOK, post(`{"title":"buy milk"}`).StatusCode())

	todos, err := authed.ListTodos(context.Background())
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestE2E_Health(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}
	client := newE2EClient(t, newE2EServer(t))

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "e2e", health.Version)
}
