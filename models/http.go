package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// RegisterRequest is the JSON body of POST /register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the form-encoded credentials of POST /login.
// The email travels in the "username" form field.
type LoginRequest struct {
	Email    string
	Password string
}

// TodoRequest is the JSON body of POST /todos and PUT /todos/{id}.
//
// Pointer fields distinguish "absent" from zero values so that a missing
// title can be rejected while a missing description or completed flag falls
// back to its default. An explicit null completed flag is not a default: it
// is remembered so that validation can reject it.
type TodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`

	completedNull bool
}

func (r *TodoRequest) UnmarshalJSON(data []byte) error {
	type plain TodoRequest
	if err := json.Unmarshal(data, (*plain)(r)); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	r.completedNull = false
	for name, raw := range fields {
		if strings.EqualFold(name, "completed") && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			r.completedNull = true
		}
	}

	return nil
}

// CompletedIsNull reports whether the decoded body carried "completed": null.
func (r TodoRequest) CompletedIsNull() bool {
	return r.completedNull
}

// Input converts a validated request into a [TodoInput]. Absent optional
// fields take their defaults: no description, not completed.
func (r TodoRequest) Input() TodoInput {
	var in TodoInput
	if r.Title != nil {
		in.Title = *r.Title
	}
	in.Description = r.Description
	if r.Completed != nil {
		in.Completed = *r.Completed
	}

	return in
}

// UserView is the public representation of a user returned by POST /register.
type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
