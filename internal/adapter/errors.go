package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrEmptyAddress = errors.New("empty address")
)

// APIError is a non-2xx response of the server.
type APIError struct {
	StatusCode int
	Detail     string

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Detail)
}

func (e *APIError) Unwrap() error {
	return e.kind
}
