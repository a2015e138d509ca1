// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

// Package app contains shared application-layer constants used across the
// todo server handlers, middleware and the API client.
//
// All Msg* constants are human-readable message strings that are written into
// the "detail" field of HTTP error bodies or into acknowledgement messages.
// Clients match on them, so the wording must stay stable.
package app

const (
	// MsgEmailExists is returned when a registration attempt names an email
	// that already belongs to an account.
	MsgEmailExists = "Email exists already."

	// MsgIncorrectCredentials is returned for an unknown email and for a
	// wrong password alike.
	MsgIncorrectCredentials = "Incorrect email or password"

	// MsgAPIKeyMissing is returned when a protected route is called without
	// an X-API-Key header.
	MsgAPIKeyMissing = "API key is missing"

	// MsgInvalidAPIKey is returned when the key decodes but names no user,
	// or names a user whose id differs from the encoded one.
	MsgInvalidAPIKey = "Invalid API key"

	// MsgInvalidAPIKeyFormat is returned when the key is not base64 text of
	// the form "email:user_id".
	MsgInvalidAPIKeyFormat = "Invalid API key format"

	// MsgInvalidTodoID is returned when a path id is not a well-formed
	// record identifier.
	MsgInvalidTodoID = "Invalid todo ID."

	// MsgTodoNotFound is returned when no todo of the caller has the id.
	MsgTodoNotFound = "Todo not found."

	// MsgInvalidDataProvided is returned when the request body fails
	// validation and no field-specific message is available.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgNotAuthenticated is returned when a handler behind the API key
	// middleware finds no user in the request context.
	MsgNotAuthenticated = "Not authenticated"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "Too many requests"

	// MsgNotFound and MsgMethodNotAllowed answer unknown routes.
	MsgNotFound         = "Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgLoggedOut acknowledges POST /logout.
	MsgLoggedOut = "Successfully logged out"

	// MsgWelcome is the message of the root document.
	MsgWelcome = "Welcome to the Todo API"
)
