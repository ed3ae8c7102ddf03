package lmsapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/lms/pkg/httpx"
)

const (
	ErrorCodeValidation         = "validation_error"
	ErrorCodeConflict           = "conflict"
	ErrorCodeUnauthenticated    = "unauthenticated"
	ErrorCodeMalformedHeader    = "malformed_header"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeTokenExpired       = "token_expired"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeBlocked            = "blocked"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeIncorrectPassword  = "incorrect_password"
	ErrorCodeServerError        = "server_error"
)

// APIError is the JSON error body of every failed LMS request. The server
// writes it and the client decodes into it.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	Code    string `json:"code"`
	Message string `json:"message"`

	// Cause carries the underlying error text for server errors.
	Cause string `json:"error,omitempty"`

	// Details maps field names to validation failures.
	Details map[string]string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Cause != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	if e.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	}
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// NewAPIError builds an APIError with the given status, code and message.
func NewAPIError(statusCode int, code, message string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Message: message}
}

// WithCause returns a copy of e carrying err's text.
func (e *APIError) WithCause(err error) *APIError {
	cp := *e
	if err != nil {
		cp.Cause = err.Error()
	}
	return &cp
}

// WithDetails returns a copy of e carrying per-field validation failures.
func (e *APIError) WithDetails(details map[string]string) *APIError {
	cp := *e
	cp.Details = details
	return &cp
}

// parseErrorResponse turns a non-2xx response into an *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && (apiErr.Code != "" || apiErr.Message != "") {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
