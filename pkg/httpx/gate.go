package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/lms/pkg/jwtx"
)

// Gate bundles the access policies for a router. Admin always wraps
// Authenticated, so the order cannot be got wrong at a call site.
type Gate struct {
	Verifier jwtx.Verifier

	// Resolve is optional; see ClaimsResolver.
	Resolve ClaimsResolver

	// OnError defaults to WriteGateError.
	OnError ErrorWriter
}

// Authenticated requires a valid bearer token.
func (g Gate) Authenticated(h http.Handler) http.Handler {
	return AuthnMiddleware(g.Verifier, g.Resolve, g.OnError)(h)
}

// Admin requires a valid bearer token carrying the admin role.
func (g Gate) Admin(h http.Handler) http.Handler {
	return Chain(h,
		AuthnMiddleware(g.Verifier, g.Resolve, g.OnError),
		RequireAdmin(g.OnError),
	)
}

// Optional attaches claims if a valid token is present.
func (g Gate) Optional(h http.Handler) http.Handler {
	return OptionalAuthn(g.Verifier, g.Resolve)(h)
}
