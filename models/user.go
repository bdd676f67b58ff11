// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier assigned by the repository on creation.
	ID int64 `json:"id"`

	// Email is the globally unique login identifier. It is stored exactly as
	// provided at registration and looked up with an exact match.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt output of the user's password.
	// It is never the plaintext and is never serialized.
	PasswordHash string `json:"-"`

	// Confirmed reports whether the user has proven ownership of Email.
	// Only confirmed users may log in.
	Confirmed bool `json:"confirmed"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
