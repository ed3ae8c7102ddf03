package httpx

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/lms/pkg/jwtx"
)

var (
	// ErrUnauthenticated means no Authorization header was sent at all.
	ErrUnauthenticated = errors.New("httpx: no token provided")
	// ErrMalformedHeader means the header was not "Bearer <token>".
	ErrMalformedHeader = errors.New("httpx: malformed authorization header")
	ErrForbidden       = errors.New("httpx: admins only")
)

// ErrorWriter renders a gate rejection.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// StatusFor maps gate failures to HTTP status codes. A missing header is 403
// while a malformed or unverifiable one is 401.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrMalformedHeader),
		errors.Is(err, jwtx.ErrMalformed),
		errors.Is(err, jwtx.ErrInvalidSig),
		errors.Is(err, jwtx.ErrExpired),
		errors.Is(err, jwtx.ErrIssuer),
		errors.Is(err, jwtx.ErrNotYetValid),
		errors.Is(err, jwtx.ErrInvalidClaim):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor is the client-facing text for a gate failure.
func MessageFor(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return "No token provided"
	case errors.Is(err, ErrMalformedHeader):
		return "Invalid token format. Expected: Bearer <token>"
	case errors.Is(err, ErrForbidden):
		return "Access denied: Admins only"
	case errors.Is(err, jwtx.ErrExpired):
		return "Token expired"
	case StatusFor(err) == http.StatusUnauthorized:
		return "Invalid token"
	default:
		return "Internal server error"
	}
}

// WriteGateError is the default ErrorWriter.
func WriteGateError(w http.ResponseWriter, _ *http.Request, err error) {
	code := StatusFor(err)
	if code == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	}
	WriteJSON(w, code, map[string]string{"message": MessageFor(err)})
}
