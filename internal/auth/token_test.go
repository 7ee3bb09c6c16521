package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newTestManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret, ttl)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManagerRejectsEmptySecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	require.Error(t, err)
}

func TestNewTokenManagerDefaultsTTL(t *testing.T) {
	tm := newTestManager(t, 0)
	assert.Equal(t, DefaultTokenTTL, tm.TTL())
}

func TestGenerateParseRoundTrip(t *testing.T) {
	tm := newTestManager(t, time.Hour)
	identity := Identity{DNI: "12345678", EmployeeCode: 7, IsAdmin: true}

	token, expiresAt, err := tm.Generate(identity)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "12345678", claims.DNI)
	assert.Equal(t, 7, claims.EmployeeCode)
	assert.True(t, claims.IsAdmin)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		DNI:          "12345678",
		EmployeeCode: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenStr, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Parse(tokenStr)
	require.Error(t, err)
}

func TestParseRejectsTamperedSignature(t *testing.T) {
	tm := newTestManager(t, time.Hour)
	token, _, err := tm.Generate(Identity{DNI: "12345678"})
	require.NoError(t, err)

	_, err = tm.Parse(flipLastByte(token))
	require.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	other, err := NewTokenManager("a-different-secret", time.Hour)
	require.NoError(t, err)
	token, _, err := other.Generate(Identity{DNI: "12345678"})
	require.NoError(t, err)

	tm := newTestManager(t, time.Hour)
	_, err = tm.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsWrongSigningMethod(t *testing.T) {
	tm := newTestManager(t, time.Hour)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS384, &Claims{
		DNI: "12345678",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenStr, err := foreign.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = tm.Parse(tokenStr)
	require.Error(t, err)
}

func TestParseRejectsMalformedToken(t *testing.T) {
	tm := newTestManager(t, time.Hour)
	_, err := tm.Parse("not-a-token")
	require.Error(t, err)
}

func flipLastByte(token string) string {
	last := token[len(token)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	return token[:len(token)-1] + string(replacement)
}
