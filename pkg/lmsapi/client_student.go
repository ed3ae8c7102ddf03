package lmsapi

import (
	"context"
	"net/http"
)

// Signup registers an account without credentials. Asking for role "admin"
// only works while no admin exists.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	return c.signup(ctx, "", req)
}

// Signup registers an account as the session's user, which lets an admin
// create further admins.
func (s *Session) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	return s.client.signup(ctx, s.token, req)
}

func (c *Client) signup(ctx context.Context, token string, req SignupRequest) (*SignupResponse, error) {
	var out SignupResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/student/signup", token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, *LoginResponse, error) {
	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/student/login", "", req, &out, http.StatusOK); err != nil {
		return nil, nil, err
	}
	return c.NewSession(out.Token), &out, nil
}

// AdminCheck succeeds only for admin tokens.
func (s *Session) AdminCheck(ctx context.Context) (*AdminCheckResponse, error) {
	var out AdminCheckResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/student/admin/check", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Profile(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/student/profile", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*UserResponse, error) {
	var out UserResponse
	if err := s.client.doJSON(ctx, http.MethodPut, "/api/student/profile", s.token, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return s.client.doJSON(ctx, http.MethodPut, "/api/student/change-password", s.token, req, nil, http.StatusOK)
}

// ListUsers is admin only.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/student/admin/users", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// SetBlocked is admin only.
func (s *Session) SetBlocked(ctx context.Context, userID string, blocked bool) (*UserResponse, error) {
	var out UserResponse
	path := "/api/student/admin/users/" + userID + "/block"
	if err := s.client.doJSON(ctx, http.MethodPut, path, s.token, BlockUserRequest{Blocked: blocked}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser is admin only. The user's reviews remain.
func (s *Session) DeleteUser(ctx context.Context, userID string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/api/student/admin/users/"+userID, s.token, nil, nil, http.StatusOK)
}
