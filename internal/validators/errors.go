// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned when Validate receives a value it has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a field scope names a field the type does not have.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrInvalidInput wraps every rule violation so callers can map it to a
	// client error with a single errors.Is check.
	ErrInvalidInput = errors.New("invalid input")
)
