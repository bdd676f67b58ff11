// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// ErrHashingFailed is returned by [PasswordHasher.Hash] when the environment
// cannot produce a hash. Callers treat it as an internal server error.
var ErrHashingFailed = errors.New("password hashing failed")
