package domain

import "time"

// DefaultCourseLevel is used when a course is created without a level.
const DefaultCourseLevel = "Beginner"

type Material struct {
	Topic  string `json:"topic"`
	PDFURL string `json:"pdfUrl"`
}

type Course struct {
	ID          string
	Title       string
	Description string
	Instructor  string
	Category    string
	Duration    string
	Level       string
	Price       float64
	ImageURL    string
	Materials   []Material
	Assignment  string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CoursePatch carries optional course fields for create and update.
type CoursePatch struct {
	Title       *string
	Description *string
	Instructor  *string
	Category    *string
	Duration    *string
	Level       *string
	Price       *float64
	ImageURL    *string
	Materials   *[]Material
	Assignment  *string
	Available   *bool
}

// NewCourse builds a course from p with defaults for everything absent.
func (p CoursePatch) NewCourse() Course {
	c := Course{
		Level:     DefaultCourseLevel,
		Materials: []Material{},
		Available: true,
	}
	return p.Apply(c)
}

// Apply returns c with the non-nil fields of p copied over.
func (p CoursePatch) Apply(c Course) Course {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Title, p.Title)
	set(&c.Description, p.Description)
	set(&c.Instructor, p.Instructor)
	set(&c.Category, p.Category)
	set(&c.Duration, p.Duration)
	set(&c.Level, p.Level)
	set(&c.ImageURL, p.ImageURL)
	set(&c.Assignment, p.Assignment)

	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Materials != nil {
		c.Materials = append([]Material{}, (*p.Materials)...)
	}
	if p.Available != nil {
		c.Available = *p.Available
	}
	return c
}
