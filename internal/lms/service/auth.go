package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/internal/lms/store"
	"github.com/aussiebroadwan/lms/pkg/cryptox"
	"github.com/aussiebroadwan/lms/pkg/idx"
	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

// AuthService owns registration, login and token-to-account resolution.
type AuthService struct {
	Store  store.Store
	Signer jwtx.Signer
	Clock  Clock
}

type Registration struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

func (r Registration) validate() (domain.Role, error) {
	errs := make(map[string]string)
	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = "required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["lastName"] = "required"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "required"
	}
	switch {
	case r.Password == "":
		errs["password"] = "required"
	case len(r.Password) > cryptox.MaxPasswordBytes:
		errs["password"] = "too long (max 72 bytes)"
	}
	role, ok := domain.ParseRole(r.Role)
	if !ok {
		errs["role"] = "must be student or admin"
	}
	return role, invalid(errs)
}

var errAdminAlreadyRegistered = because(ErrForbidden, "The first Admin is already registered. Only existing Admins can create more.")

// Register creates an account. Asking for the admin role needs either an
// admin requester or, with no requester, that no admin exists yet. A
// rejected bootstrap attempt answers Forbidden even if the email is taken;
// concurrent bootstrap attempts are settled by a single conditional insert.
func (s *AuthService) Register(ctx context.Context, reg Registration, requester *jwtx.Claims) (domain.User, error) {
	l := slogx.FromContext(ctx)

	role, err := reg.validate()
	if err != nil {
		return domain.User{}, err
	}

	if role == domain.RoleAdmin && requester != nil && !requester.IsAdmin() {
		l.Warn("non-admin attempted to create an admin", slog.String("requester_id", requester.UserID))
		return domain.User{}, because(ErrForbidden, "Admin roles can only be created by an existing Admin.")
	}

	// The bootstrap decision comes before the email check. CreateFirstAdmin
	// below still settles concurrent bootstrap attempts.
	if role == domain.RoleAdmin && requester == nil {
		exists, err := s.Store.Users().AdminExists(ctx)
		if err != nil {
			return domain.User{}, fmt.Errorf("check admin exists: %w", err)
		}
		if exists {
			l.Warn("bootstrap admin already registered", slog.String("email", reg.Email))
			return domain.User{}, errAdminAlreadyRegistered
		}
	}

	// Cheap pre-check so a taken email does not pay for a bcrypt hash. The
	// unique index still decides races.
	if _, err := s.Store.Users().GetUserByEmail(ctx, reg.Email); err == nil {
		return domain.User{}, because(ErrConflict, "Email already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := cryptox.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.Clock.now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        reg.Email,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
		PasswordHash: hash,
		Role:         role,
		Avatar:       domain.DefaultAvatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if role == domain.RoleAdmin && requester == nil {
		err = s.Store.Users().CreateFirstAdmin(ctx, u)
	} else {
		err = s.Store.Users().CreateUser(ctx, u)
	}

	switch {
	case err == nil:
	case errors.Is(err, store.ErrAdminExists):
		l.Warn("bootstrap admin already registered", slog.String("email", reg.Email))
		return domain.User{}, errAdminAlreadyRegistered
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, because(ErrConflict, "Email already registered")
	default:
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	l.Info("user registered", slog.String("user_id", u.ID), slog.String("role", string(u.Role)))
	return u, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

// Login checks the blocked flag before the password, so a blocked account
// is refused whatever password was sent.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	l := slogx.FromContext(ctx)

	if strings.TrimSpace(email) == "" || password == "" {
		return LoginResult{}, invalid(map[string]string{"credentials": "email and password are required"})
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, because(ErrNotFound, "User not found")
		}
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if u.Blocked {
		l.Info("blocked user attempted login", slog.String("user_id", u.ID))
		return LoginResult{}, ErrBlocked
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			l.Info("login password mismatch", slog.String("user_id", u.ID))
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("verify password: %w", err)
	}

	token, claims, err := s.Signer.Issue(identityOf(u))
	if err != nil {
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	return LoginResult{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: u}, nil
}

// ResolveClaims re-reads the account behind verified claims. Missing users
// fail with ErrStaleToken and blocked ones with ErrBlocked; otherwise the
// stored role and names replace the ones baked into the token.
func (s *AuthService) ResolveClaims(ctx context.Context, c jwtx.Claims) (jwtx.Claims, error) {
	u, err := s.Store.Users().GetUserByID(ctx, c.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return jwtx.Claims{}, ErrStaleToken
		}
		return jwtx.Claims{}, fmt.Errorf("resolve claims: %w", err)
	}
	if u.Blocked {
		return jwtx.Claims{}, ErrBlocked
	}

	c.Role = string(u.Role)
	c.FirstName = u.FirstName
	c.LastName = u.LastName
	c.Email = u.Email
	return c, nil
}

func identityOf(u domain.User) jwtx.Identity {
	return jwtx.Identity{
		UserID:    u.ID,
		Role:      string(u.Role),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
