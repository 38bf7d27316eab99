package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("emp-1", "COMP-1234", "admin", testSecret, time.Hour, "workly-crm", time.Now())
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, testSecret, "workly-crm")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims.Subject)
	assert.Equal(t, "COMP-1234", claims.TenantID)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWTRejects(t *testing.T) {
	valid, err := GenerateJWT("emp-1", "COMP-1234", "admin", testSecret, time.Hour, "workly-crm", time.Now())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseAndValidateJWT(valid, "other-secret", "workly-crm")
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ParseAndValidateJWT(valid, testSecret, "someone-else")
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := GenerateJWT("emp-1", "COMP-1234", "admin", testSecret, time.Minute, "workly-crm", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(expired, testSecret, "workly-crm")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := TenantClaims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "emp-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = ParseAndValidateJWT(none, testSecret, "")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAndValidateJWT("not-a-token", testSecret, "")
		assert.Error(t, err)
	})
}
