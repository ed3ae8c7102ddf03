package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrAdminExists is returned by CreateFirstAdmin once any admin exists.
	ErrAdminExists = errors.New("store: admin already exists")
)

// Store is the root data access interface. Sub-repositories are reached
// through methods so a Tx hands out repos bound to the same transaction.
type Store interface {
	Users() Users
	Courses() Courses
	Reviews() Reviews

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the email exactly as stored.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser returns ErrAlreadyExists when the email is taken. The unique
	// index decides, so concurrent inserts of one email yield one winner.
	CreateUser(ctx context.Context, u domain.User) error

	// CreateFirstAdmin inserts u as an admin only if no admin exists yet, in
	// a single statement. ErrAdminExists when it lost.
	CreateFirstAdmin(ctx context.Context, u domain.User) error

	AdminExists(ctx context.Context) (bool, error)

	// UpdateProfile writes names and email; ErrAlreadyExists on email clash.
	UpdateProfile(ctx context.Context, u domain.User) error

	UpdatePasswordHash(ctx context.Context, userID, hash string) error
	SetBlocked(ctx context.Context, userID string, blocked bool) error

	// ListUsers returns everyone, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// DeleteUser keeps the user's reviews; they show as "Deleted User".
	DeleteUser(ctx context.Context, userID string) error
}

type Courses interface {
	GetCourseByID(ctx context.Context, id string) (domain.Course, error)

	// ListCourses returns courses oldest first, optionally only available ones.
	ListCourses(ctx context.Context, onlyAvailable bool) ([]domain.Course, error)

	CreateCourse(ctx context.Context, c domain.Course) error

	// UpdateCourse overwrites every mutable column of c.
	UpdateCourse(ctx context.Context, c domain.Course) error

	DeleteCourse(ctx context.Context, id string) error
}

type Reviews interface {
	CreateReview(ctx context.Context, r domain.Review) error
	GetReviewByID(ctx context.Context, id string) (domain.Review, error)

	// ListReviews returns every review newest first with the author's live
	// record, or domain.DeletedAuthor when the author is gone.
	ListReviews(ctx context.Context) ([]domain.ReviewWithAuthor, error)

	ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error)

	// UpdateReview writes rating and comment.
	UpdateReview(ctx context.Context, r domain.Review) error

	DeleteReview(ctx context.Context, id string) error
}
