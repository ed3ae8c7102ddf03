package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-secret")

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newHS256(t *testing.T, c *clock, opts ...jwtx.Option) *jwtx.HS256 {
	t.Helper()
	h, err := jwtx.NewHS256(testSecret, append([]jwtx.Option{jwtx.WithClock(c.Now)}, opts...)...)
	require.NoError(t, err)
	return h
}

func TestNewHS256RequiresSecret(t *testing.T) {
	_, err := jwtx.NewHS256(nil)
	require.ErrorIs(t, err, jwtx.ErrNoSecret)

	_, err = jwtx.NewHS256([]byte{})
	require.ErrorIs(t, err, jwtx.ErrNoSecret)

	var zero *jwtx.HS256
	require.ErrorIs(t, zero.Validate(), jwtx.ErrNoSecret)
}

func TestIssueAndVerify(t *testing.T) {
	c := &clock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	h := newHS256(t, c, jwtx.WithIssuer("lms"))
	require.Equal(t, "HS256", h.Alg())

	id := jwtx.Identity{UserID: "u1", Role: "admin", FirstName: "Ada", LastName: "L", Email: "ada@x.com"}
	token, issued, err := h.Issue(id)
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	got, err := h.Verify(token)
	require.NoError(t, err)
	require.Equal(t, id, got.Identity())
	require.Equal(t, issued.ExpiresAt.Time, got.ExpiresAt.Time)
	require.True(t, got.IsAdmin())
}

func TestVerifyExpiryBoundary(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &clock{t: start}
	h := newHS256(t, c)

	token, _, err := h.Issue(jwtx.Identity{UserID: "u1", Role: "student"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		offset  time.Duration
		wantErr error
	}{
		{"at issuance", 0, nil},
		{"one minute before expiry", 23*time.Hour + 59*time.Minute, nil},
		{"one second before expiry", 24*time.Hour - time.Second, nil},
		{"exactly at expiry", 24 * time.Hour, jwtx.ErrExpired},
		{"one second after expiry", 24*time.Hour + time.Second, jwtx.ErrExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.t = start.Add(tt.offset)
			_, err := h.Verify(token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestVerifyCustomTTL(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	c := &clock{t: start}
	h := newHS256(t, c, jwtx.WithTTL(time.Hour))
	require.Equal(t, time.Hour, h.TTL())

	token, _, err := h.Issue(jwtx.Identity{UserID: "u1"})
	require.NoError(t, err)

	c.t = start.Add(time.Hour)
	_, err = h.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejects(t *testing.T) {
	c := &clock{t: time.Now().UTC()}
	h := newHS256(t, c, jwtx.WithIssuer("lms"))

	token, claims, err := h.Issue(jwtx.Identity{UserID: "u1", Role: "student"})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte("another-secret"), jwtx.WithIssuer("lms"))
		require.NoError(t, err)
		_, err = other.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		forged := claims
		forged.Role = "admin"
		forgedTok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, forged).SignedString([]byte("x"))
		require.NoError(t, err)
		parts[1] = strings.Split(forgedTok, ".")[1]

		_, err = h.Verify(strings.Join(parts, "."))
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("alg none", func(t *testing.T) {
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = h.Verify(none)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("different hmac alg", func(t *testing.T) {
		hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
		require.NoError(t, err)
		_, err = h.Verify(hs512)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := h.Verify("not-a-token")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		other := newHS256(t, c, jwtx.WithIssuer("someone-else"))
		tok, _, err := other.Issue(jwtx.Identity{UserID: "u1"})
		require.NoError(t, err)
		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("missing exp", func(t *testing.T) {
		noExp := claims
		noExp.ExpiresAt = nil
		tok, err := h.Sign(noExp)
		require.NoError(t, err)
		_, err = h.Verify(tok)
		require.Error(t, err)
	})

	t.Run("missing user id", func(t *testing.T) {
		anon := claims
		anon.UserID = ""
		tok, err := h.Sign(anon)
		require.NoError(t, err)
		_, err = h.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}
