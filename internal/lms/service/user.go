package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/internal/lms/store"
	"github.com/aussiebroadwan/lms/pkg/cryptox"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

// MinPasswordLength applies to password changes.
const MinPasswordLength = 6

type UserService struct {
	Store store.Store
	Clock Clock
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, userLookupErr(err)
	}
	return u, nil
}

// UpdateProfile changes only the fields present in p.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, p domain.ProfilePatch) (domain.User, error) {
	errs := make(map[string]string)
	for field, v := range map[string]*string{
		"firstName": p.FirstName,
		"lastName":  p.LastName,
		"email":     p.Email,
	} {
		if v != nil && strings.TrimSpace(*v) == "" {
			errs[field] = "must not be empty"
		}
	}
	if err := invalid(errs); err != nil {
		return domain.User{}, err
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, userLookupErr(err)
	}

	u = p.Apply(u)
	u.UpdatedAt = s.Clock.now()

	if err := s.Store.Users().UpdateProfile(ctx, u); err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.User{}, because(ErrConflict, "Email already registered")
		case errors.Is(err, store.ErrNotFound):
			return domain.User{}, userLookupErr(err)
		default:
			return domain.User{}, fmt.Errorf("update profile: %w", err)
		}
	}
	return u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	errs := make(map[string]string)
	if current == "" {
		errs["currentPassword"] = "required"
	}
	switch {
	case next == "":
		errs["newPassword"] = "required"
	case len(next) < MinPasswordLength:
		errs["newPassword"] = "must be at least 6 characters long"
	case len(next) > cryptox.MaxPasswordBytes:
		errs["newPassword"] = "too long (max 72 bytes)"
	}
	if err := invalid(errs); err != nil {
		return err
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return userLookupErr(err)
	}

	if err := cryptox.VerifyPassword(current, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrIncorrectPassword
		}
		return fmt.Errorf("verify password: %w", err)
	}

	hash, err := cryptox.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		return userLookupErr(err)
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", userID))
	return nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// SetBlocked toggles the blocked flag. Tokens already issued to the user
// stay valid until they expire unless live claim resolution is enabled.
func (s *UserService) SetBlocked(ctx context.Context, userID string, blocked bool) (domain.User, error) {
	if err := s.Store.Users().SetBlocked(ctx, userID, blocked); err != nil {
		return domain.User{}, userLookupErr(err)
	}

	slogx.FromContext(ctx).Info("user block toggled",
		slog.String("target_user_id", userID),
		slog.Bool("blocked", blocked),
	)
	return s.GetProfile(ctx, userID)
}

// DeleteUser removes an account; its reviews remain and are shown as
// written by "Deleted User".
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		return userLookupErr(err)
	}
	slogx.FromContext(ctx).Info("user deleted", slog.String("target_user_id", userID))
	return nil
}

func userLookupErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return because(ErrNotFound, "User not found")
	}
	return err
}
