// Package crypto holds credential hashing primitives used by the
// authentication service.
package crypto
