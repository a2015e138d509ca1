// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, API key
// encoding, HTTP response writing, HTTP client initialization and
// request identifiers.
package utils

import (
	"context"

	"github.com/CemWebDev/python-todo-backend/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authenticated user is stored in the
// request context by the API key middleware.
var UserCtxKey = contextKey("user")

// RequestIDCtxKey is the key under which the request trace id is stored.
var RequestIDCtxKey = contextKey("requestID")

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the models.User type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// WithRequestID returns a copy of ctx carrying the request trace id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDCtxKey, id)
}

// GetRequestIDFromContext returns the request trace id, or "" when absent.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDCtxKey).(string)
	return id
}
