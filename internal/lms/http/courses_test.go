package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/lms/pkg/lmsapi"
	"github.com/stretchr/testify/require"
)

func newCourse(title string) lmsapi.CourseRequest {
	return lmsapi.CourseRequest{
		Title:       ptr(title),
		Description: ptr("Intro"),
		Instructor:  ptr("Grace"),
		Category:    ptr("Programming"),
	}
}

func TestCourseCatalog(t *testing.T) {
	ctx := context.Background()
	s := newTestServer(t)

	admin := s.signupAndLogin(t, "root@x.com", "admin")
	student := s.signupAndLogin(t, "s@x.com", "")

	_, err := student.CreateCourse(ctx, newCourse("Nope"))
	requireAPIError(t, err, http.StatusForbidden, lmsapi.ErrorCodeForbidden)

	_, err = admin.CreateCourse(ctx, lmsapi.CourseRequest{Title: ptr("Only title")})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, lmsapi.ErrorCodeValidation)
	require.Contains(t, apiErr.Details, "description")

	hidden := newCourse("Hidden")
	hidden.IsAvailable = ptr(false)
	created, err := admin.CreateCourse(ctx, hidden)
	require.NoError(t, err)
	require.Equal(t, "Beginner", created.Course.Level)
	require.False(t, created.Course.IsAvailable)

	// Nothing available yet: the public list falls back to everything.
	list, err := s.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	visible, err := admin.CreateCourse(ctx, newCourse("Visible"))
	require.NoError(t, err)

	list, err = s.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Visible", list[0].Title)

	list, err = admin.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = admin.AllCourses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = student.AllCourses(ctx)
	requireAPIError(t, err, http.StatusForbidden, lmsapi.ErrorCodeForbidden)

	got, err := s.Course(ctx, visible.Course.ID)
	require.NoError(t, err)
	require.Equal(t, "Visible", got.Title)

	mats := []lmsapi.Material{{Topic: "Week 1", PDFURL: "https://cdn.test/w1.pdf"}}
	updated, err := admin.UpdateCourse(ctx, visible.Course.ID, lmsapi.CourseRequest{
		Price:     ptr(19.99),
		Materials: &mats,
	})
	require.NoError(t, err)
	require.Equal(t, "Visible", updated.Course.Title)
	require.Equal(t, 19.99, updated.Course.Price)
	require.Equal(t, mats, updated.Course.Materials)

	require.NoError(t, admin.DeleteCourse(ctx, visible.Course.ID))

	_, err = s.Course(ctx, visible.Course.ID)
	apiErr = requireAPIError(t, err, http.StatusNotFound, lmsapi.ErrorCodeNotFound)
	require.Equal(t, "Course not found", apiErr.Message)

	err = admin.DeleteCourse(ctx, visible.Course.ID)
	requireAPIError(t, err, http.StatusNotFound, lmsapi.ErrorCodeNotFound)
}
