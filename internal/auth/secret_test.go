package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCompareSecretPlaintext(t *testing.T) {
	assert.True(t, CompareSecret("password123", "password123"))
	assert.False(t, CompareSecret("password123", "password124"))
	assert.False(t, CompareSecret("password123", ""))
}

func TestCompareSecretBcrypt(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CompareSecret(string(hashed), "password123"))
	assert.False(t, CompareSecret(string(hashed), "password124"))
}

func TestCompareSecretBcryptHashIsNotAcceptedLiterally(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	// Submitting the stored hash itself must not authenticate.
	assert.False(t, CompareSecret(string(hashed), string(hashed)))
}
