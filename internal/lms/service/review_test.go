package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/stretchr/testify/require"
)

func TestReviewLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	admin := f.register(t, "admin@x.com", domain.RoleAdmin, nil)
	alice := f.register(t, "alice@x.com", domain.RoleStudent, nil)
	bob := f.register(t, "bob@x.com", domain.RoleStudent, nil)

	r, err := f.reviews.Create(ctx, alice.ID, 4, "  Great course  ")
	require.NoError(t, err)
	require.Equal(t, "Great course", r.Comment)
	require.Equal(t, "Test User", r.Name)
	require.Equal(t, "alice@x.com", r.Email)
	require.Equal(t, domain.NoCourse, r.Course)

	t.Run("validation", func(t *testing.T) {
		_, err := f.reviews.Create(ctx, alice.ID, 6, "x")
		require.ErrorIs(t, err, ErrValidation)
		_, err = f.reviews.Create(ctx, alice.ID, 3, " ")
		require.ErrorIs(t, err, ErrValidation)
		_, err = f.reviews.Create(ctx, "missing", 3, "x")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other students cannot modify", func(t *testing.T) {
		_, err := f.reviews.Update(ctx, Actor{UserID: bob.ID}, r.ID, ptr(1), nil)
		require.ErrorIs(t, err, ErrForbidden)
		require.ErrorIs(t, f.reviews.Delete(ctx, Actor{UserID: bob.ID}, r.ID), ErrForbidden)
	})

	t.Run("owner updates, blank comment kept", func(t *testing.T) {
		got, err := f.reviews.Update(ctx, Actor{UserID: alice.ID}, r.ID, ptr(5), ptr(""))
		require.NoError(t, err)
		require.Equal(t, 5, got.Rating)
		require.Equal(t, "Great course", got.Comment)

		_, err = f.reviews.Update(ctx, Actor{UserID: alice.ID}, r.ID, ptr(0), nil)
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("admin updates anyone's", func(t *testing.T) {
		got, err := f.reviews.Update(ctx, ActorFromClaims(*claimsFor(admin)), r.ID, nil, ptr("Edited"))
		require.NoError(t, err)
		require.Equal(t, "Edited", got.Comment)
	})

	t.Run("listing", func(t *testing.T) {
		_, err := f.reviews.Create(ctx, bob.ID, 2, "Meh")
		require.NoError(t, err)

		all, err := f.reviews.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, "Meh", all[0].Comment)

		mine, err := f.reviews.ListMine(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, r.ID, mine[0].ID)
	})

	t.Run("deleted author", func(t *testing.T) {
		require.NoError(t, f.users.DeleteUser(ctx, bob.ID))

		all, err := f.reviews.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, domain.DeletedAuthor, all[0].Author)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.reviews.Delete(ctx, Actor{UserID: alice.ID}, r.ID))
		require.ErrorIs(t, f.reviews.Delete(ctx, Actor{UserID: alice.ID}, r.ID), ErrNotFound)
	})
}
