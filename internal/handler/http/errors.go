// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body is not valid JSON for
	// the expected shape.
	ErrInvalidJSON = errors.New("Invalid JSON was passed")

	// ErrInvalidGzipBody is returned when a request declares gzip encoding
	// but its body is not a gzip stream.
	ErrInvalidGzipBody = errors.New("invalid gzip data")

	// ErrInvalidPostID is returned when the {postID} path segment is not a
	// positive integer.
	ErrInvalidPostID = errors.New("invalid post id")

	// ErrNotAuthenticated is returned when a protected route is reached
	// without a usable bearer token.
	ErrNotAuthenticated = errors.New("Not authenticated")

	// ErrCouldNotValidateCredentials is the body of every 401 produced by a
	// rejected access token other than an expired one.
	ErrCouldNotValidateCredentials = errors.New("Could not validate credentials")
)
