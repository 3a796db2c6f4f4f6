// Package cryptox implements the password verifier scheme used by the
// server: a random per-user salt and an argon2id-derived verifier. The
// plaintext password never reaches storage.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

const saltSize = 32

// GenerateSalt returns a fresh random salt.
func GenerateSalt() []byte {
	b := make([]byte, saltSize)
	// rand.Read never fails on supported platforms
	_, _ = rand.Read(b)
	return b
}

// DeriveVerifier derives the stored verifier from a password and salt.
func DeriveVerifier(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// VerifierMatches compares a candidate verifier against the stored one
// in constant time.
func VerifierMatches(stored, candidate []byte) bool {
	return subtle.ConstantTimeCompare(stored, candidate) == 1
}
