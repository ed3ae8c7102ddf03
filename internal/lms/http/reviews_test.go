package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/lms/pkg/lmsapi"
	"github.com/stretchr/testify/require"
)

func TestReviews(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	admin := s.signupAndLogin(t, "root@x.com", "admin")
	alice := s.signupAndLogin(t, "alice@x.com", "")
	bob := s.signupAndLogin(t, "bob@x.com", "")

	_, err := s.NewSession("").Reviews(ctx)
	requireAPIError(t, err, http.StatusForbidden, lmsapi.ErrorCodeUnauthenticated)

	_, err = alice.CreateReview(ctx, lmsapi.ReviewRequest{Rating: ptr(9), Comment: ptr("x")})
	requireAPIError(t, err, http.StatusBadRequest, lmsapi.ErrorCodeValidation)

	_, err = alice.CreateReview(ctx, lmsapi.ReviewRequest{Rating: ptr(4)})
	requireAPIError(t, err, http.StatusBadRequest, lmsapi.ErrorCodeValidation)

	created, err := alice.CreateReview(ctx, lmsapi.ReviewRequest{Rating: ptr(4), Comment: ptr("Solid")})
	require.NoError(t, err)
	require.Equal(t, "Test User", created.Review.Name)
	require.Equal(t, "alice@x.com", created.Review.Email)
	require.Equal(t, "N/A", created.Review.Course)

	_, err = bob.UpdateReview(ctx, created.Review.ID, lmsapi.ReviewRequest{Rating: ptr(1)})
	apiErr := requireAPIError(t, err, http.StatusForbidden, lmsapi.ErrorCodeForbidden)
	require.Equal(t, "You do not have permission to update this review", apiErr.Message)

	err = bob.DeleteReview(ctx, created.Review.ID)
	requireAPIError(t, err, http.StatusForbidden, lmsapi.ErrorCodeForbidden)

	updated, err := alice.UpdateReview(ctx, created.Review.ID, lmsapi.ReviewRequest{Rating: ptr(5), Comment: ptr("")})
	require.NoError(t, err)
	require.Equal(t, 5, updated.Review.Rating)
	require.Equal(t, "Solid", updated.Review.Comment)

	_, err = bob.CreateReview(ctx, lmsapi.ReviewRequest{Rating: ptr(2), Comment: ptr("Meh")})
	require.NoError(t, err)

	mine, err := bob.MyReviews(ctx)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "Meh", mine[0].Comment)

	all, err := alice.Reviews(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Meh", all[0].Comment)
	require.NotNil(t, all[0].Author)
	require.Equal(t, "bob@x.com", all[0].Author.Email)

	users, err := admin.ListUsers(ctx)
	require.NoError(t, err)
	for _, u := range users {
		if u.Email == "bob@x.com" {
			require.NoError(t, admin.DeleteUser(ctx, u.ID))
		}
	}

	all, err = alice.Reviews(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Deleted", all[0].Author.FirstName)
	require.Equal(t, "User", all[0].Author.LastName)

	require.NoError(t, admin.DeleteReview(ctx, all[0].ID))

	err = alice.DeleteReview(ctx, all[0].ID)
	requireAPIError(t, err, http.StatusNotFound, lmsapi.ErrorCodeNotFound)
}
