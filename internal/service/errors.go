// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication errors. Handlers map each of them to an HTTP status with
// errors.Is; none of them carries detail about which internal check failed.
var (
	// ErrEmailAlreadyExists is returned by Register when the email is taken.
	ErrEmailAlreadyExists = errors.New("user with that email already exists")

	// ErrInvalidCredentials is returned by Login for an unknown email and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUserNotConfirmed is returned by Login for a user who has not yet
	// confirmed their email.
	ErrUserNotConfirmed = errors.New("user has not confirmed email")

	// ErrUserNotFound is returned when a token names a user that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenExpired is returned when a well-formed token of the right type
	// is past its expiry.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for any other token failure: bad signature,
	// wrong type, wrong issuer, malformed input.
	ErrTokenInvalid = errors.New("invalid token")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

var (
	// ErrPostNotFound is returned when a post, or the post a comment or like
	// refers to, does not exist.
	ErrPostNotFound = errors.New("post not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// errTokenTypeMismatch is reported by tokenClaims.Validate and never leaves
// this package.
var errTokenTypeMismatch = errors.New("token type mismatch")
