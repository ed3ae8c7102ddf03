package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/lmsapi"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

// messageBlocked is shown to blocked users on login and, with live claim
// resolution, on every authenticated request.
const messageBlocked = "Your account is blocked. Please contact the administrator."

// toAPIError maps service and gate failures onto the wire error. fallback is
// the message used for unexpected errors, which also carry the cause text.
func toAPIError(err error, fallback string) *lmsapi.APIError {
	var (
		ve     *service.ValidationError
		reason *service.ReasonError
	)
	msg := func(def string) string {
		if errors.As(err, &reason) {
			return reason.Reason
		}
		return def
	}

	switch {
	case errors.As(err, &ve):
		return lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeValidation,
			"All required fields must be provided.").WithDetails(ve.Fields)
	case errors.Is(err, service.ErrValidation):
		return lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeValidation, msg("Invalid request"))
	case errors.Is(err, service.ErrConflict):
		return lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeConflict, msg("Email already registered"))
	case errors.Is(err, service.ErrForbidden):
		return lmsapi.NewAPIError(http.StatusForbidden, lmsapi.ErrorCodeForbidden, msg("Forbidden"))
	case errors.Is(err, service.ErrNotFound):
		return lmsapi.NewAPIError(http.StatusNotFound, lmsapi.ErrorCodeNotFound, msg("Not found"))
	case errors.Is(err, service.ErrBlocked):
		return lmsapi.NewAPIError(http.StatusForbidden, lmsapi.ErrorCodeBlocked, messageBlocked)
	case errors.Is(err, service.ErrInvalidCredentials):
		return lmsapi.NewAPIError(http.StatusUnauthorized, lmsapi.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, service.ErrIncorrectPassword):
		return lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeIncorrectPassword, "Current password is incorrect")
	case errors.Is(err, service.ErrStaleToken):
		return lmsapi.NewAPIError(http.StatusUnauthorized, lmsapi.ErrorCodeInvalidToken, "Invalid token")
	}

	switch code := httpx.StatusFor(err); {
	case errors.Is(err, httpx.ErrUnauthenticated):
		return lmsapi.NewAPIError(code, lmsapi.ErrorCodeUnauthenticated, httpx.MessageFor(err))
	case errors.Is(err, httpx.ErrMalformedHeader):
		return lmsapi.NewAPIError(code, lmsapi.ErrorCodeMalformedHeader, httpx.MessageFor(err))
	case errors.Is(err, httpx.ErrForbidden):
		return lmsapi.NewAPIError(code, lmsapi.ErrorCodeForbidden, httpx.MessageFor(err))
	case code == http.StatusUnauthorized:
		apiCode := lmsapi.ErrorCodeInvalidToken
		if httpx.MessageFor(err) == "Token expired" {
			apiCode = lmsapi.ErrorCodeTokenExpired
		}
		return lmsapi.NewAPIError(code, apiCode, httpx.MessageFor(err)).WithCause(err)
	}

	return lmsapi.NewAPIError(http.StatusInternalServerError, lmsapi.ErrorCodeServerError, fallback).WithCause(err)
}

func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	apiErr := toAPIError(err, fallback)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error(fallback, "err", err)
	}
	apiErr.WriteError(w)
}

// gateError is the httpx.ErrorWriter for every protected route.
func gateError(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, err, "Server error")
}
