package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

// ClaimsResolver runs after signature verification. It may replace the
// claims (e.g. with a live role) or reject the request.
type ClaimsResolver func(ctx context.Context, c jwtx.Claims) (jwtx.Claims, error)

// BearerFromRequest distinguishes an absent Authorization header
// (ErrUnauthenticated) from a present but unusable one (ErrMalformedHeader).
func BearerFromRequest(r *http.Request) (string, error) {
	values := r.Header.Values("Authorization")
	if len(values) == 0 {
		return "", ErrUnauthenticated
	}
	return ParseBearer(values[0])
}

// ParseBearer accepts exactly "<scheme> <token>" with a case-insensitive
// "bearer" scheme.
func ParseBearer(header string) (string, error) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", ErrMalformedHeader
	}
	return parts[1], nil
}

// Authenticate extracts, verifies and resolves the bearer token of r.
func Authenticate(r *http.Request, v jwtx.Verifier, resolve ClaimsResolver) (jwtx.Claims, error) {
	raw, err := BearerFromRequest(r)
	if err != nil {
		return jwtx.Claims{}, err
	}

	claims, err := v.Verify(raw)
	if err != nil {
		return jwtx.Claims{}, err
	}

	if resolve != nil {
		return resolve(r.Context(), claims)
	}
	return claims, nil
}

// AuthnMiddleware rejects requests without a valid bearer token.
func AuthnMiddleware(v jwtx.Verifier, resolve ClaimsResolver, onErr ErrorWriter) Middleware {
	if onErr == nil {
		onErr = WriteGateError
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := Authenticate(r, v, resolve)
			if err != nil {
				slogx.FromContext(r.Context()).Warn("authentication failed", "err", err)
				onErr(w, r, err)
				return
			}

			ctx := slogx.SetUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}

// OptionalAuthn attaches claims when a valid token is present and otherwise
// lets the request through anonymously.
func OptionalAuthn(v jwtx.Verifier, resolve ClaimsResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := Authenticate(r, v, resolve)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := slogx.SetUserID(r.Context(), claims.UserID)
			next.ServeHTTP(w, r.WithContext(ContextWithClaims(ctx, claims)))
		})
	}
}
