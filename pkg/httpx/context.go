package httpx

import (
	"context"

	"github.com/aussiebroadwan/lms/pkg/jwtx"
)

type ctxKey string

const CtxKeyClaims ctxKey = "claims"

// ContextWithClaims attaches verified claims for downstream handlers.
func ContextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	return context.WithValue(ctx, CtxKeyClaims, c)
}

// ClaimsFromContext returns the claims placed by the authentication gate.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}
