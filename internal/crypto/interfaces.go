// Package crypto provides password hashing for the account layer.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes plaintext passwords for storage and verifies
// submitted passwords against stored encodings.
type PasswordHasher interface {
	// Hash returns a self-describing encoding of the password that embeds
	// the salt and the hashing parameters.
	Hash(password string) (string, error)

	// Compare reports whether password matches the stored encoding.
	// Comparison is constant-time. A malformed encoding returns an error.
	Compare(encoded, password string) (bool, error)
}
