package store

import (
	"context"

	"github.com/CemWebDev/python-todo-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores user and returns it with its assigned ID.
	// A taken email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail performs an exact, case-sensitive lookup.
	// No match yields ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// TodoRepository persists todos. Every lookup is scoped to an owner: a todo
// belonging to someone else is indistinguishable from a missing one.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	ListTodos(ctx context.Context, userID string) ([]models.Todo, error)
	FindTodo(ctx context.Context, userID, todoID string) (models.Todo, error)
	// ReplaceTodo overwrites title, description, completed and updated_at.
	ReplaceTodo(ctx context.Context, todo models.Todo) error
	DeleteTodo(ctx context.Context, userID, todoID string) error
}
