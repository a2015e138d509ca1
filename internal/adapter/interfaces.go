// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

// Package adapter provides a typed client for the todo HTTP API.
//
// The primary abstraction is [TodoAPI], which hides request encoding, the
// X-API-Key header and error decoding from callers. The package ships an
// HTTP/REST implementation ([NewHTTPTodoClient]).
//
// Error responses are mapped by mapHTTPError onto the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401) and [errors.As] with [*APIError] to read the
// server's detail message.
package adapter

import (
	"context"

	"github.com/CemWebDev/python-todo-backend/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/todo_api_mock.go -package=mock

// TodoAPI defines communication with the todo server.
type TodoAPI interface {
	// SetAPIKey stores the key attached to all subsequent protected
	// requests. Login calls it on success.
	SetAPIKey(apiKey string)

	// APIKey returns the key currently stored, or "" if none has been set.
	APIKey() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, email, password string) (models.UserView, error)

	// Login exchanges credentials for an API key and stores the key.
	Login(ctx context.Context, email, password string) (models.LoginResponse, error)

	// Logout acknowledges a logout and forgets the stored key locally.
	Logout(ctx context.Context) (models.MessageResponse, error)

	CreateTodo(ctx context.Context, request models.TodoRequest) (models.Todo, error)
	ListTodos(ctx context.Context) ([]models.Todo, error)
	GetTodo(ctx context.Context, todoID string) (models.Todo, error)
	UpdateTodo(ctx context.Context, todoID string, request models.TodoRequest) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID string) error

	// Health reports the server health document. A 503 is returned as
	// [ErrServiceUnavailable] together with the decoded document.
	Health(ctx context.Context) (models.HealthResponse, error)
}
