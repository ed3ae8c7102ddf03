package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HS256 signs and verifies tokens with a single shared secret. The zero
// value is unusable; build one with NewHS256.
type HS256 struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var (
	_ Signer   = (*HS256)(nil)
	_ Verifier = (*HS256)(nil)
)

// Option customises an HS256.
type Option func(*HS256)

// WithIssuer sets the "iss" claim on issued tokens and requires it on
// verification.
func WithIssuer(issuer string) Option {
	return func(h *HS256) { h.issuer = issuer }
}

// WithTTL overrides DefaultTokenTTL. Non-positive values are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(h *HS256) {
		if ttl > 0 {
			h.ttl = ttl
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(h *HS256) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHS256 returns ErrNoSecret when secret is empty so that callers fail
// closed instead of signing with a blank key.
func NewHS256(secret []byte, opts ...Option) (*HS256, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}

	h := &HS256{
		secret: append([]byte(nil), secret...),
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// TTL is the lifetime given to tokens built by Issue.
func (h *HS256) TTL() time.Duration { return h.ttl }

// Validate reports whether the signer can be used.
func (h *HS256) Validate() error {
	if h == nil || len(h.secret) == 0 {
		return ErrNoSecret
	}
	return nil
}

// Sign turns claims into a compact JWS.
func (h *HS256) Sign(claims Claims) (string, error) {
	if err := h.Validate(); err != nil {
		return "", err
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return s, nil
}

// Issue builds claims for id at the current time and signs them.
func (h *HS256) Issue(id Identity) (string, Claims, error) {
	claims := NewClaims(id, h.issuer, h.ttl, h.now().UTC())
	token, err := h.Sign(claims)
	if err != nil {
		return "", Claims{}, err
	}
	return token, claims, nil
}

// Verify checks signature and expiry and returns the embedded claims as
// issued. A token is valid strictly before its exp instant.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	if err := h.Validate(); err != nil {
		return Claims{}, err
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, classify(err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidClaim
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if claims.UserID == "" {
		return Claims{}, fmt.Errorf("%w: missing id", ErrInvalidClaim)
	}

	return claims, nil
}

// classify folds the jwt library's error zoo into our sentinels.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSig, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidClaim, err)
	}
}
