package httpx

import "net/http"

// RequireAdmin lets only admin claims through. With no claims in context it
// rejects with ErrForbidden rather than assuming anything.
func RequireAdmin(onErr ErrorWriter) Middleware {
	if onErr == nil {
		onErr = WriteGateError
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, ok := ClaimsFromContext(r.Context())
			if !ok || !c.IsAdmin() {
				onErr(w, r, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
