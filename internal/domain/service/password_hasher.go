// Package service declares the ports the use cases need from infrastructure:
// hashing, tokens, payments, QR codes, notifications and event publishing.
package service

// PasswordHasher hashes customer passwords for email sign-in.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
