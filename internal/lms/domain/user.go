package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// DefaultAvatar is given to every new account.
const DefaultAvatar = "https://avatar.iran.liara.run/public/6"

// ParseRole maps free-form input onto a Role. Empty input means student.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoleStudent:
		return RoleStudent, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

type User struct {
	ID           string
	Email        string // unique, compared case-sensitively
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt
	Role         Role
	Blocked      bool
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// ProfilePatch changes only the non-nil fields.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// Apply returns u with the patch applied.
func (p ProfilePatch) Apply(u User) User {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	return u
}
