// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext credentials into one-way hashes and checks
// candidates against them.
//
// Implementations embed salt and cost in the returned hash string, so a hash
// produced with one cost still verifies after the configured cost changes.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of plain. Any input, including an
	// empty or very long one, is accepted. It fails with [ErrHashingFailed]
	// only when the runtime cannot produce a hash (for example, the random
	// source is unavailable).
	Hash(plain string) (string, error)

	// Verify reports whether plain matches hash. A mismatch or a malformed
	// hash yields false; it is never an error.
	Verify(plain, hash string) bool
}
