package lmsapi_test

import (
	"testing"

	"github.com/aussiebroadwan/lms/pkg/lmsapi"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func TestSignupRequestValidate(t *testing.T) {
	ok := lmsapi.SignupRequest{FirstName: "A", LastName: "B", Email: "a@x.com", Password: "secret1"}
	require.Nil(t, ok.Validate())

	withRole := ok
	withRole.Role = "Admin"
	require.Nil(t, withRole.Validate())

	badRole := ok
	badRole.Role = "teacher"
	require.Contains(t, badRole.Validate(), "role")

	errs := lmsapi.SignupRequest{Email: "  "}.Validate()
	require.Len(t, errs, 4)
	require.Equal(t, "required", errs["email"])
}

func TestChangePasswordRequestValidate(t *testing.T) {
	require.Nil(t, lmsapi.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "secret1"}.Validate())

	errs := lmsapi.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "short"}.Validate()
	require.Contains(t, errs["newPassword"], "at least 6")

	errs = lmsapi.ChangePasswordRequest{}.Validate()
	require.Len(t, errs, 2)
}

func TestCourseRequestValidate(t *testing.T) {
	t.Run("create requires core fields", func(t *testing.T) {
		errs := lmsapi.CourseRequest{Title: strp("Go")}.Validate(true)
		require.NotContains(t, errs, "title")
		require.Contains(t, errs, "description")
		require.Contains(t, errs, "instructor")
		require.Contains(t, errs, "category")
	})

	t.Run("update accepts partial body", func(t *testing.T) {
		require.Nil(t, lmsapi.CourseRequest{Title: strp("Go 2")}.Validate(false))
	})

	t.Run("update rejects blanking a required field", func(t *testing.T) {
		require.Contains(t, lmsapi.CourseRequest{Title: strp(" ")}.Validate(false), "title")
	})

	t.Run("negative price", func(t *testing.T) {
		p := -1.0
		require.Contains(t, lmsapi.CourseRequest{Price: &p}.Validate(false), "price")
	})
}

func TestReviewRequestValidate(t *testing.T) {
	require.Nil(t, lmsapi.ReviewRequest{Rating: intp(5), Comment: strp("great")}.Validate(true))
	require.Len(t, lmsapi.ReviewRequest{}.Validate(true), 2)
	require.Nil(t, lmsapi.ReviewRequest{}.Validate(false))
	require.Contains(t, lmsapi.ReviewRequest{Rating: intp(0)}.Validate(false), "rating")
	require.Contains(t, lmsapi.ReviewRequest{Rating: intp(6)}.Validate(false), "rating")
	require.Contains(t, lmsapi.ReviewRequest{Rating: intp(3), Comment: strp("   ")}.Validate(true), "comment")
}
