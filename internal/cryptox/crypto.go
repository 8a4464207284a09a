// Package cryptox implements password hashing for the local identity
// provider: argon2id key derivation plus a SHA-256 verifier, compared in
// constant time.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/psptechhub/leadcap/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt generated for every new password.
const SaltSize = 32

// DeriveKey stretches password with salt using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value that is stored.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// HashPassword returns a fresh salt and the verifier for password.
func HashPassword(password []byte) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// VerifyPassword reports whether password matches the stored salt/verifier pair.
func VerifyPassword(password, salt, verifier []byte) bool {
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}
