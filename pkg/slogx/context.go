package slogx

import (
	"context"
	"log/slog"
	"sync"
)

type (
	loggerKey  struct{}
	requestKey struct{}
)

// request carries mutable per-request facts that are only known after inner
// middleware has run (e.g. who the caller turned out to be).
type request struct {
	mu     sync.Mutex
	userID string
}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return l
}

// SetUserID records the authenticated user for the request log line and
// returns a context whose logger also carries the user_id attribute.
func SetUserID(ctx context.Context, userID string) context.Context {
	if rq, ok := ctx.Value(requestKey{}).(*request); ok {
		rq.mu.Lock()
		rq.userID = userID
		rq.mu.Unlock()
	}
	return WithContext(ctx, FromContext(ctx).With("user_id", userID))
}

func withRequest(ctx context.Context) (context.Context, *request) {
	rq := &request{}
	return context.WithValue(ctx, requestKey{}, rq), rq
}

func (rq *request) user() string {
	rq.mu.Lock()
	defer rq.mu.Unlock()
	return rq.userID
}
