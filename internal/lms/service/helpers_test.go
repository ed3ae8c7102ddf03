package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/internal/lms/store/drivers/sqlite"
	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *sqlite.Store
	signer  *jwtx.HS256
	auth    *AuthService
	users   *UserService
	courses *CourseService
	reviews *ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "lms.db")))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	signer, err := jwtx.NewHS256([]byte("test-secret"))
	require.NoError(t, err)

	return &fixture{
		store:   st,
		signer:  signer,
		auth:    &AuthService{Store: st, Signer: signer},
		users:   &UserService{Store: st},
		courses: &CourseService{Store: st},
		reviews: &ReviewService{Store: st},
	}
}

func (f *fixture) register(t *testing.T, email string, role domain.Role, requester *jwtx.Claims) domain.User {
	t.Helper()
	u, err := f.auth.Register(context.Background(), Registration{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "secret1",
		Role:      string(role),
	}, requester)
	require.NoError(t, err)
	return u
}

func claimsFor(u domain.User) *jwtx.Claims {
	c := jwtx.NewClaims(identityOf(u), "", jwtx.DefaultTokenTTL, time.Now())
	return &c
}

func ptr[T any](v T) *T { return &v }
