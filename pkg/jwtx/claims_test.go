package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewClaims(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	id := jwtx.Identity{UserID: "u1", Role: "student", FirstName: "A", LastName: "B", Email: "a@x.com"}

	c := jwtx.NewClaims(id, "lms", jwtx.DefaultTokenTTL, now)

	require.Equal(t, "u1", c.Subject)
	require.Equal(t, "lms", c.Issuer)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now.Add(24*time.Hour), c.ExpiresAt.Time)
	require.Equal(t, id, c.Identity())
	require.False(t, c.IsAdmin())

	c.Role = jwtx.RoleAdmin
	require.True(t, c.IsAdmin())
}

func TestValidateIssuer(t *testing.T) {
	c := &jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer: "lms",
		},
	}

	t.Run("matching issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer("lms"))
	})

	t.Run("empty expected issuer", func(t *testing.T) {
		require.NoError(t, c.ValidateIssuer(""))
	})

	t.Run("mismatched issuer", func(t *testing.T) {
		require.ErrorIs(t, c.ValidateIssuer("chat-service"), jwtx.ErrIssuer)
	})
}
