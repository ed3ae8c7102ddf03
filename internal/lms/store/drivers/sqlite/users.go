package sqlite

import (
	"context"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/internal/lms/store"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, first_name, last_name, password_hash, role, blocked, avatar, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.PasswordHash,
		&role,
		&u.Blocked,
		&u.Avatar,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	u.Role = domain.Role(role)
	return u, err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash,
		string(u.Role), u.Blocked, u.Avatar, u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *usersRepo) CreateFirstAdmin(ctx context.Context, u domain.User) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		SELECT ?, ?, ?, ?, ?, 'admin', ?, ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM users WHERE role = 'admin')`,
		u.ID, u.Email, u.FirstName, u.LastName, u.PasswordHash,
		u.Blocked, u.Avatar, u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	if err != nil {
		return mapConstraint(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrAdminExists
	}
	return nil
}

func (r *usersRepo) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE role = 'admin')`,
	).Scan(&exists)
	return exists, err
}

func (r *usersRepo) UpdateProfile(ctx context.Context, u domain.User) error {
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = ?, last_name = ?, email = ?, updated_at = ?
		WHERE id = ?`,
		u.FirstName, u.LastName, u.Email, u.UpdatedAt.UTC(), u.ID,
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, hash string) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		hash, now(), userID,
	))
}

func (r *usersRepo) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET blocked = ?, updated_at = ? WHERE id = ?`,
		blocked, now(), userID,
	))
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID))
}

