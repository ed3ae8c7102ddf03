package http

import (
	"net/http"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/aussiebroadwan/lms/pkg/lmsapi"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

type StudentHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

// HandleSignup godoc
//
//	@Summary		Register a student or admin
//	@Description	Creates an account. role defaults to "student". An "admin" role is accepted
//	@Description	only for the very first admin, or when the request carries an admin bearer token.
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			body	body		lmsapi.SignupRequest	true	"New account"
//	@Success		201		{object}	lmsapi.SignupResponse
//	@Failure		400		{object}	lmsapi.APIError	"validation_error or conflict"
//	@Failure		403		{object}	lmsapi.APIError	"admin creation not allowed"
//	@Failure		500		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/student/signup [post].
func (h *StudentHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req lmsapi.SignupRequest
	if !decode(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		invalidFields(w, errs)
		return
	}

	var requester *jwtx.Claims
	if c, ok := httpx.ClaimsFromContext(r.Context()); ok {
		requester = &c
	}

	u, err := h.AuthService.Register(r.Context(), service.Registration{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	}, requester)
	if err != nil {
		writeError(w, r, err, "Error registering Student")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, lmsapi.SignupResponse{
		Message: "Student registered successfully",
		User:    toUser(u),
	})
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a bearer token valid for 24 hours.
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			body	body		lmsapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	lmsapi.LoginResponse
//	@Failure		400		{object}	lmsapi.APIError
//	@Failure		401		{object}	lmsapi.APIError	"invalid_credentials"
//	@Failure		403		{object}	lmsapi.APIError	"blocked"
//	@Failure		404		{object}	lmsapi.APIError	"not_found"
//	@Failure		500		{object}	lmsapi.APIError
//	@Router			/api/student/login [post].
func (h *StudentHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req lmsapi.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		invalidFields(w, errs)
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err, "Error logging in")
		return
	}

	slogx.FromContext(slogx.SetUserID(r.Context(), res.User.ID)).Info("login succeeded")

	httpx.WriteJSON(w, http.StatusOK, lmsapi.LoginResponse{
		Message:   "Login successful",
		Token:     res.Token,
		Role:      string(res.User.Role),
		User:      toUser(res.User),
		ExpiresAt: res.ExpiresAt,
	})
}

// HandleAdminCheck godoc
//
//	@Summary		Check admin access
//	@Tags			Students
//	@Produce		json
//	@Success		200	{object}	lmsapi.AdminCheckResponse
//	@Failure		401	{object}	lmsapi.APIError
//	@Failure		403	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/student/admin/check [get].
func (h *StudentHandler) HandleAdminCheck(w http.ResponseWriter, r *http.Request) {
	c, _ := httpx.ClaimsFromContext(r.Context())
	httpx.WriteJSON(w, http.StatusOK, lmsapi.AdminCheckResponse{
		Message: "Welcome Admin!",
		User:    toTokenIdentity(c),
	})
}

// HandleProfile godoc
//
//	@Summary		Current user's profile
//	@Tags			Students
//	@Produce		json
//	@Success		200	{object}	lmsapi.ProfileResponse
//	@Failure		401	{object}	lmsapi.APIError
//	@Failure		404	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/student/profile [get].
func (h *StudentHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	c, _ := httpx.ClaimsFromContext(r.Context())

	u, err := h.UserService.GetProfile(r.Context(), c.UserID)
	if err != nil {
		writeError(w, r, err, "Server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, lmsapi.ProfileResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	})
}

// HandleUpdateProfile godoc
//
//	@Summary		Update the current user's profile
//	@Description	Only the fields present in the body change.
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			body	body		lmsapi.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	lmsapi.UserResponse
//	@Failure		400		{object}	lmsapi.APIError
//	@Failure		404		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/student/profile [put].
func (h *StudentHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	c, _ := httpx.ClaimsFromContext(r.Context())

	var req lmsapi.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	u, err := h.UserService.UpdateProfile(r.Context(), c.UserID, domain.ProfilePatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		writeError(w, r, err, "Server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, lmsapi.UserResponse{
		Message: "Profile updated successfully",
		User:    toUser(u),
	})
}

// HandleChangePassword godoc
//
//	@Summary		Change the current user's password
//	@Tags			Students
//	@Accept			json
//	@Produce		json
//	@Param			body	body		lmsapi.ChangePasswordRequest	true	"Current and new password"
//	@Success		200		{object}	lmsapi.MessageResponse
//	@Failure		400		{object}	lmsapi.APIError	"validation_error or incorrect_password"
//	@Failure		404		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/student/change-password [put].
func (h *StudentHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	c, _ := httpx.ClaimsFromContext(r.Context())

	var req lmsapi.ChangePasswordRequest
	if !decode(w, r, &req) {
		return
	}
	if errs := req.Validate(); errs != nil {
		invalidFields(w, errs)
		return
	}

	if err := h.UserService.ChangePassword(r.Context(), c.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, r, err, "Server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, lmsapi.MessageResponse{Message: "Password changed successfully"})
}

// HandleListUsers godoc
//
//	@Summary		List all users
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{array}		lmsapi.User
//	@Failure		401	{object}	lmsapi.APIError
//	@Failure		403	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/student/admin/users [get].
func (h *StudentHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to get users")
		return
	}

	out := make([]lmsapi.User, len(users))
	for i, u := range users {
		out[i] = toUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleSetBlocked godoc
//
//	@Summary		Block or unblock a user
//	@Description	Blocked users cannot log in. Tokens they already hold stay valid until expiry.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"User ID"
//	@Param			body	body		lmsapi.BlockUserRequest	true	"Blocked flag"
//	@Success		200		{object}	lmsapi.UserResponse
//	@Failure		404		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/student/admin/users/{id}/block [put].
func (h *StudentHandler) HandleSetBlocked(w http.ResponseWriter, r *http.Request) {
	var req lmsapi.BlockUserRequest
	if !decode(w, r, &req) {
		return
	}

	u, err := h.UserService.SetBlocked(r.Context(), r.PathValue("id"), req.Blocked)
	if err != nil {
		writeError(w, r, err, "Server error")
		return
	}

	msg := "User unblocked"
	if u.Blocked {
		msg = "User blocked"
	}
	httpx.WriteJSON(w, http.StatusOK, lmsapi.UserResponse{Message: msg, User: toUser(u)})
}

// HandleDeleteUser godoc
//
//	@Summary		Delete a user
//	@Description	The user's reviews are kept and shown as written by "Deleted User".
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string	true	"User ID"
//	@Success		200	{object}	lmsapi.MessageResponse
//	@Failure		404	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/student/admin/users/{id} [delete].
func (h *StudentHandler) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lmsapi.MessageResponse{Message: "User deleted"})
}
