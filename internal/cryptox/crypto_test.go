package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	require.Len(t, key1, 32)
	assert.True(t, bytes.Equal(key1, key2))
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	assert.NotEqual(t, DeriveKey(password, []byte("salt-1")), DeriveKey(password, []byte("salt-2")))
}

func TestMakeVerifier_IsSHA256Sized(t *testing.T) {
	assert.Len(t, MakeVerifier([]byte("key")), 32)
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	salt, verifier := HashPassword([]byte("hunter22"))
	require.Len(t, salt, SaltSize)

	assert.True(t, VerifyPassword([]byte("hunter22"), salt, verifier))
	assert.False(t, VerifyPassword([]byte("hunter23"), salt, verifier))
}

func TestHashPassword_FreshSaltEachTime(t *testing.T) {
	salt1, verifier1 := HashPassword([]byte("same"))
	salt2, verifier2 := HashPassword([]byte("same"))

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, verifier1, verifier2)
}
