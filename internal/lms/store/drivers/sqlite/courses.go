package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
)

type coursesRepo struct {
	db dbtx
}

const courseColumns = `id, title, description, instructor, category, duration, level, price,
	image_url, materials, assignment, available, created_at, updated_at`

func scanCourse(row rowScanner) (domain.Course, error) {
	var (
		c         domain.Course
		materials string
	)
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.Instructor,
		&c.Category,
		&c.Duration,
		&c.Level,
		&c.Price,
		&c.ImageURL,
		&materials,
		&c.Assignment,
		&c.Available,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Course{}, err
	}

	c.Materials = []domain.Material{}
	if materials != "" {
		if err := json.Unmarshal([]byte(materials), &c.Materials); err != nil {
			return domain.Course{}, fmt.Errorf("sqlite: course %s materials: %w", c.ID, err)
		}
	}
	return c, nil
}

func encodeMaterials(m []domain.Material) (string, error) {
	if m == nil {
		m = []domain.Material{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("sqlite: encode materials: %w", err)
	}
	return string(b), nil
}

func (r *coursesRepo) GetCourseByID(ctx context.Context, id string) (domain.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	c, err := scanCourse(row)
	if err != nil {
		return domain.Course{}, mapNotFound(err)
	}
	return c, nil
}

func (r *coursesRepo) ListCourses(ctx context.Context, onlyAvailable bool) ([]domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses`
	if onlyAvailable {
		query += ` WHERE available = 1`
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *coursesRepo) CreateCourse(ctx context.Context, c domain.Course) error {
	materials, err := encodeMaterials(c.Materials)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO courses (`+courseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Title, c.Description, c.Instructor, c.Category, c.Duration, c.Level, c.Price,
		c.ImageURL, materials, c.Assignment, c.Available, c.CreatedAt.UTC(), c.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *coursesRepo) UpdateCourse(ctx context.Context, c domain.Course) error {
	materials, err := encodeMaterials(c.Materials)
	if err != nil {
		return err
	}
	return expectOne(r.db.ExecContext(ctx, `
		UPDATE courses
		SET title = ?, description = ?, instructor = ?, category = ?, duration = ?, level = ?,
		    price = ?, image_url = ?, materials = ?, assignment = ?, available = ?, updated_at = ?
		WHERE id = ?`,
		c.Title, c.Description, c.Instructor, c.Category, c.Duration, c.Level,
		c.Price, c.ImageURL, materials, c.Assignment, c.Available, c.UpdatedAt.UTC(),
		c.ID,
	))
}

func (r *coursesRepo) DeleteCourse(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id))
}
