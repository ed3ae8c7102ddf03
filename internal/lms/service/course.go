package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/internal/lms/store"
	"github.com/aussiebroadwan/lms/pkg/idx"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

type CourseService struct {
	Store store.Store
	Clock Clock
}

// List returns every course when includeUnavailable is set. Otherwise it
// returns the available ones, or every course if none is marked available.
func (s *CourseService) List(ctx context.Context, includeUnavailable bool) ([]domain.Course, error) {
	if includeUnavailable {
		return s.Store.Courses().ListCourses(ctx, false)
	}

	available, err := s.Store.Courses().ListCourses(ctx, true)
	if err != nil {
		return nil, err
	}
	if len(available) > 0 {
		return available, nil
	}
	return s.Store.Courses().ListCourses(ctx, false)
}

func (s *CourseService) Get(ctx context.Context, id string) (domain.Course, error) {
	c, err := s.Store.Courses().GetCourseByID(ctx, id)
	if err != nil {
		return domain.Course{}, courseLookupErr(err)
	}
	return c, nil
}

func (s *CourseService) Create(ctx context.Context, p domain.CoursePatch) (domain.Course, error) {
	if err := validateCourse(p, true); err != nil {
		return domain.Course{}, err
	}

	now := s.Clock.now()
	c := p.NewCourse()
	c.ID = idx.NewAt(now).String()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.Store.Courses().CreateCourse(ctx, c); err != nil {
		return domain.Course{}, fmt.Errorf("create course: %w", err)
	}

	slogx.FromContext(ctx).Info("course created", slog.String("course_id", c.ID))
	return c, nil
}

// Update merges p into the stored course.
func (s *CourseService) Update(ctx context.Context, id string, p domain.CoursePatch) (domain.Course, error) {
	if err := validateCourse(p, false); err != nil {
		return domain.Course{}, err
	}

	var out domain.Course
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Courses().GetCourseByID(ctx, id)
		if err != nil {
			return courseLookupErr(err)
		}

		out = p.Apply(c)
		out.UpdatedAt = s.Clock.now()
		return tx.Courses().UpdateCourse(ctx, out)
	})
	if err != nil {
		return domain.Course{}, err
	}

	slogx.FromContext(ctx).Info("course updated", slog.String("course_id", id))
	return out, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.Store.Courses().DeleteCourse(ctx, id); err != nil {
		return courseLookupErr(err)
	}
	slogx.FromContext(ctx).Info("course deleted", slog.String("course_id", id))
	return nil
}

// validateCourse requires the core text fields on create and forbids
// blanking them on update.
func validateCourse(p domain.CoursePatch, create bool) error {
	errs := make(map[string]string)

	for field, v := range map[string]*string{
		"title":       p.Title,
		"description": p.Description,
		"instructor":  p.Instructor,
		"category":    p.Category,
	} {
		switch {
		case v == nil && create:
			errs[field] = "required"
		case v != nil && strings.TrimSpace(*v) == "":
			errs[field] = "required"
		}
	}
	if p.Price != nil && *p.Price < 0 {
		errs["price"] = "must not be negative"
	}
	return invalid(errs)
}

func courseLookupErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return because(ErrNotFound, "Course not found")
	}
	return err
}
