package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// CompareSecret checks a submitted password against the stored value. Legacy
// rows store the password as plaintext, so the fallback is a constant-time
// byte comparison; rows that have been rehashed carry a bcrypt prefix and are
// verified with bcrypt. See DESIGN.md for the plaintext-storage caveat.
func CompareSecret(stored, submitted string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
