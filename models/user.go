// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CemWebDev

package models

import "time"

// User represents an account entity used for authentication.
// Users are created at registration and never mutated afterwards.
type User struct {
	// ID is the unique identifier of the user (ObjectID hex).
	ID string `json:"id"`

	// Email is the unique login of the user. Compared case-sensitively,
	// exactly as stored.
	Email string `json:"email"`

	// PasswordHash is the self-describing bcrypt digest of the password.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// View returns the public projection of the user.
func (u User) View() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// TableName returns the name of the table (or collection) holding users.
func (u User) TableName() string {
	return "users"
}
