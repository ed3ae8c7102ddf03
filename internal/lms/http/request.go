package http

import (
	"net/http"

	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/lmsapi"
)

// maxJSONBody caps every JSON request body.
const maxJSONBody = 1 << 20

// decode reads the JSON body into v and writes a 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, maxJSONBody, v); err != nil {
		lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeValidation, "Invalid JSON body").
			WithCause(err).
			WriteError(w)
		return false
	}
	return true
}

// invalidFields writes a 400 listing the offending fields.
func invalidFields(w http.ResponseWriter, fields map[string]string) {
	lmsapi.NewAPIError(http.StatusBadRequest, lmsapi.ErrorCodeValidation, "All required fields must be provided.").
		WithDetails(fields).
		WriteError(w)
}
