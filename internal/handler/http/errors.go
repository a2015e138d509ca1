// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAPIKeyHeader is returned by the auth middleware when the
	// incoming request does not include an "X-API-Key" header at all.
	ErrEmptyAPIKeyHeader = errors.New("empty `X-API-Key` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded as
	// the expected JSON document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a form-encoded body cannot be parsed.
	ErrInvalidForm = errors.New("invalid form was passed")
)
