package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
)

type reviewsRepo struct {
	db dbtx
}

const reviewColumns = `r.id, r.user_id, r.name, r.email, r.course, r.rating, r.comment, r.created_at, r.updated_at`

func scanReview(row rowScanner, extra ...any) (domain.Review, error) {
	var rv domain.Review
	dest := []any{
		&rv.ID,
		&rv.UserID,
		&rv.Name,
		&rv.Email,
		&rv.Course,
		&rv.Rating,
		&rv.Comment,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return rv, err
}

func (r *reviewsRepo) CreateReview(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews (id, user_id, name, email, course, rating, comment, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rv.ID, rv.UserID, rv.Name, rv.Email, rv.Course, rv.Rating, rv.Comment,
		rv.CreatedAt.UTC(), rv.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *reviewsRepo) GetReviewByID(ctx context.Context, id string) (domain.Review, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+reviewColumns+` FROM reviews r WHERE r.id = ?`, id)
	rv, err := scanReview(row)
	if err != nil {
		return domain.Review{}, mapNotFound(err)
	}
	return rv, nil
}

func (r *reviewsRepo) ListReviews(ctx context.Context) ([]domain.ReviewWithAuthor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reviewColumns+`, u.first_name, u.last_name, u.email
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at DESC, r.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ReviewWithAuthor{}
	for rows.Next() {
		var first, last, email sql.NullString
		rv, err := scanReview(rows, &first, &last, &email)
		if err != nil {
			return nil, err
		}

		author := domain.DeletedAuthor
		if first.Valid {
			author = domain.ReviewAuthor{FirstName: first.String, LastName: last.String, Email: email.String}
		}
		out = append(out, domain.ReviewWithAuthor{Review: rv, Author: author})
	}
	return out, rows.Err()
}

func (r *reviewsRepo) ListReviewsByUser(ctx context.Context, userID string) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews r
		WHERE r.user_id = ?
		ORDER BY r.created_at DESC, r.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *reviewsRepo) UpdateReview(ctx context.Context, rv domain.Review) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE reviews SET rating = ?, comment = ?, updated_at = ? WHERE id = ?`,
		rv.Rating, rv.Comment, rv.UpdatedAt.UTC(), rv.ID,
	))
}

func (r *reviewsRepo) DeleteReview(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id))
}
