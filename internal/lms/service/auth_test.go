package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to student", func(t *testing.T) {
		f := newFixture(t)
		u, err := f.auth.Register(ctx, Registration{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Password: "secret1",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, domain.RoleStudent, u.Role)
		require.Equal(t, domain.DefaultAvatar, u.Avatar)
		require.NotEqual(t, "secret1", u.PasswordHash)
		require.False(t, u.Blocked)
	})

	t.Run("role is case-insensitive", func(t *testing.T) {
		f := newFixture(t)
		u, err := f.auth.Register(ctx, Registration{
			FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret1", Role: "Admin",
		}, nil)
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, u.Role)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Register(ctx, Registration{Email: "a@x.com"}, nil)
		require.ErrorIs(t, err, ErrValidation)

		var ve *ValidationError
		require.True(t, errors.As(err, &ve))
		require.Contains(t, ve.Fields, "firstName")
		require.Contains(t, ve.Fields, "lastName")
		require.Contains(t, ve.Fields, "password")
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.auth.Register(ctx, Registration{
			FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret1", Role: "teacher",
		}, nil)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "dup@x.com", domain.RoleStudent, nil)

		_, err := f.auth.Register(ctx, Registration{
			FirstName: "A", LastName: "B", Email: "dup@x.com", Password: "secret1",
		}, nil)
		require.ErrorIs(t, err, ErrConflict)
		require.Equal(t, "Email already registered", err.Error())
	})
}

func TestRegisterAdminBootstrap(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first := f.register(t, "root@x.com", domain.RoleAdmin, nil)
	require.True(t, first.IsAdmin())

	_, err := f.auth.Register(ctx, Registration{
		FirstName: "A", LastName: "B", Email: "second@x.com", Password: "secret1", Role: "admin",
	}, nil)
	require.ErrorIs(t, err, ErrForbidden)

	student := f.register(t, "s@x.com", domain.RoleStudent, nil)
	_, err = f.auth.Register(ctx, Registration{
		FirstName: "A", LastName: "B", Email: "third@x.com", Password: "secret1", Role: "admin",
	}, claimsFor(student))
	require.ErrorIs(t, err, ErrForbidden)

	second := f.register(t, "second@x.com", domain.RoleAdmin, claimsFor(first))
	require.True(t, second.IsAdmin())
}

func TestRegisterBootstrapCheckedBeforeEmail(t *testing.T) {
	f := newFixture(t)

	f.register(t, "root@x.com", domain.RoleAdmin, nil)
	f.register(t, "taken@x.com", domain.RoleStudent, nil)

	_, err := f.auth.Register(context.Background(), Registration{
		FirstName: "A", LastName: "B", Email: "taken@x.com", Password: "secret1", Role: "admin",
	}, nil)
	require.ErrorIs(t, err, ErrForbidden)
	require.NotErrorIs(t, err, ErrConflict)
	require.Equal(t, "The first Admin is already registered. Only existing Admins can create more.", err.Error())
}

func TestRegisterConcurrentBootstrapAdmin(t *testing.T) {
	f := newFixture(t)

	const n = 6
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.auth.Register(context.Background(), Registration{
				FirstName: "A", LastName: "B",
				Email:    fmt.Sprintf("admin%d@x.com", i),
				Password: "secret1",
				Role:     "admin",
			}, nil)
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrForbidden)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	f := newFixture(t)

	const n = 6
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.auth.Register(context.Background(), Registration{
				FirstName: "A", LastName: "B", Email: "race@x.com", Password: "secret1",
			}, nil)
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, ErrConflict)
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "login@x.com", domain.RoleStudent, nil)

	t.Run("ok", func(t *testing.T) {
		res, err := f.auth.Login(ctx, "login@x.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, u.ID, res.User.ID)

		claims, err := f.signer.Verify(res.Token)
		require.NoError(t, err)
		require.Equal(t, u.ID, claims.UserID)
		require.Equal(t, "student", claims.Role)
		require.True(t, res.ExpiresAt.Equal(claims.ExpiresAt.Time))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "nobody@x.com", "secret1")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "login@x.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := f.auth.Login(ctx, "", "")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("blocked wins over password", func(t *testing.T) {
		_, err := f.users.SetBlocked(ctx, u.ID, true)
		require.NoError(t, err)
		t.Cleanup(func() { _, _ = f.users.SetBlocked(ctx, u.ID, false) })

		_, err = f.auth.Login(ctx, "login@x.com", "secret1")
		require.ErrorIs(t, err, ErrBlocked)

		_, err = f.auth.Login(ctx, "login@x.com", "wrong")
		require.ErrorIs(t, err, ErrBlocked)
	})
}

func TestResolveClaims(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	u := f.register(t, "live@x.com", domain.RoleStudent, nil)
	c := *claimsFor(u)

	_, err := f.users.UpdateProfile(ctx, u.ID, domain.ProfilePatch{FirstName: ptr("Renamed")})
	require.NoError(t, err)

	got, err := f.auth.ResolveClaims(ctx, c)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.FirstName)

	_, err = f.users.SetBlocked(ctx, u.ID, true)
	require.NoError(t, err)
	_, err = f.auth.ResolveClaims(ctx, c)
	require.ErrorIs(t, err, ErrBlocked)

	require.NoError(t, f.users.DeleteUser(ctx, u.ID))
	_, err = f.auth.ResolveClaims(ctx, c)
	require.ErrorIs(t, err, ErrStaleToken)
}
