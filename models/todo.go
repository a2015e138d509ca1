// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package models

import "time"

// Todo is a single todo item owned by exactly one user.
//
// UserID is stamped at creation from the authenticated identity and never
// changes afterwards.
type Todo struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TodoInput holds the caller-controlled fields of a todo. It is used both for
// creation and for wholesale replacement on update.
type TodoInput struct {
	Title       string
	Description *string
	Completed   bool
}

// Apply replaces every caller-controlled field of t with the values from in.
// Fields absent from in are reset, not preserved.
func (t *Todo) Apply(in TodoInput) {
	t.Title = in.Title
	t.Description = in.Description
	t.Completed = in.Completed
}

// TableName returns the name of the table (or collection) holding todos.
func (t Todo) TableName() string {
	return "todos"
}
