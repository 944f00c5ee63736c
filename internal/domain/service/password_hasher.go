// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

// PasswordHasher abstracts one-way password hashing so the application layer
// stays independent of the concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
