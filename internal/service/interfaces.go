package service

import (
	"context"

	"github.com/CemWebDev/python-todo-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService registers users, checks their credentials and turns API keys
// back into users.
type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	// Resolve returns the user an API key was issued to. Every rejection
	// is ErrInvalidAPIKey; store failures are returned as they are.
	Resolve(ctx context.Context, apiKey string) (models.User, error)
	Logout(ctx context.Context) models.MessageResponse
}

// TodoService manages the todos of a single owner. A todo of another owner
// is reported as ErrTodoNotFound.
type TodoService interface {
	Create(ctx context.Context, ownerID string, request models.TodoRequest) (models.Todo, error)
	List(ctx context.Context, ownerID string) ([]models.Todo, error)
	Get(ctx context.Context, ownerID, todoID string) (models.Todo, error)
	Update(ctx context.Context, ownerID, todoID string, request models.TodoRequest) (models.Todo, error)
	Delete(ctx context.Context, ownerID, todoID string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	CheckHealth(ctx context.Context) error
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
