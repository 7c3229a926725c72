package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_ContainsClaims(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	signed, err := gen.GenerateToken(42, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "alice", claims["name"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	iat, ok := claims["iat"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Hour.Seconds(), exp-iat, 2)
}

func TestGenerateToken_SignedWithHS256(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	signed, err := gen.GenerateToken(1, "bob")
	require.NoError(t, err)

	token, _, err := jwt.NewParser().ParseUnverified(signed, jwt.MapClaims{})
	require.NoError(t, err)
	assert.Equal(t, jwt.SigningMethodHS256.Alg(), token.Method.Alg())
}

func TestGenerateToken_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	gen := NewGenerator("test-secret", time.Hour)

	signed, err := gen.GenerateToken(1, "bob")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
