package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenCarriesClaims(t *testing.T) {
	token, err := GenerateToken(7, 3, "secret", time.Hour)
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(*Claims)
	require.Equal(t, 7, claims.UserID)
	require.Equal(t, 3, claims.CompanyID)
}

func TestTokenExpiry(t *testing.T) {
	token, err := GenerateToken(1, 1, "secret", time.Hour)
	require.NoError(t, err)

	exp, err := TokenExpiry(token)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)
	require.False(t, TokenExpired(token))
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(1, 1, "secret", -time.Minute)
	require.NoError(t, err)
	require.True(t, TokenExpired(token))

	require.True(t, TokenExpired("not-a-token"))
}
