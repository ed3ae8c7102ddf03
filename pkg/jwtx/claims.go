package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an LMS access token.
const DefaultTokenTTL = 24 * time.Hour

// RoleAdmin is the role value that passes the admin gate.
const RoleAdmin = "admin"

// Identity is the snapshot of a user that gets baked into a token at
// issuance time. It is not refreshed afterwards.
type Identity struct {
	UserID    string
	Role      string
	FirstName string
	LastName  string
	Email     string
}

// Claims are the access-token claims. The custom fields use the same JSON
// names the LMS frontend already reads.
type Claims struct {
	jwt.RegisteredClaims

	UserID    string `json:"id"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// NewClaims builds claims for id valid over [now, now+ttl).
func NewClaims(id Identity, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    id.UserID,
		Role:      id.Role,
		FirstName: id.FirstName,
		LastName:  id.LastName,
		Email:     id.Email,
	}
}

// IsAdmin reports whether the token was issued to an admin.
func (c *Claims) IsAdmin() bool { return c.Role == RoleAdmin }

// Identity returns the identity snapshot carried by the claims.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:    c.UserID,
		Role:      c.Role,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}
