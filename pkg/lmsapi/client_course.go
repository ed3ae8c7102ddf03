package lmsapi

import (
	"context"
	"net/http"
	"net/url"
)

// Courses lists the public catalogue.
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	return c.courses(ctx, "", "/api/course")
}

// Courses lists the catalogue as seen by the session user; admins see
// unavailable courses too.
func (s *Session) Courses(ctx context.Context) ([]Course, error) {
	return s.client.courses(ctx, s.token, "/api/course")
}

// AllCourses is the admin-only full listing.
func (s *Session) AllCourses(ctx context.Context) ([]Course, error) {
	return s.client.courses(ctx, s.token, "/api/course/admin/all")
}

func (c *Client) courses(ctx context.Context, token, path string) ([]Course, error) {
	var out []Course
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Course(ctx context.Context, id string) (*Course, error) {
	var out Course
	if err := c.doJSON(ctx, http.MethodGet, "/api/course/"+url.PathEscape(id), "", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateCourse(ctx context.Context, req CourseRequest) (*CourseResponse, error) {
	var out CourseResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/api/course/save", s.token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateCourse(ctx context.Context, id string, req CourseRequest) (*CourseResponse, error) {
	var out CourseResponse
	path := "/api/course/update/" + url.PathEscape(id)
	if err := s.client.doJSON(ctx, http.MethodPut, path, s.token, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteCourse(ctx context.Context, id string) error {
	path := "/api/course/delete/" + url.PathEscape(id)
	return s.client.doJSON(ctx, http.MethodDelete, path, s.token, nil, nil, http.StatusOK)
}
