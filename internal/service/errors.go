package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrDuplicateEmail      = errors.New("email exists already")
	ErrInvalidCredentials  = errors.New("incorrect email or password")
	ErrInvalidAPIKey       = errors.New("invalid API key")
	ErrNoIdentityInContext = errors.New("no authenticated user in context")

	ErrInvalidID    = errors.New("invalid todo ID")
	ErrTodoNotFound = errors.New("todo not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
