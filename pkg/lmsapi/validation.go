package lmsapi

import (
	"strings"
)

const (
	reasonRequired = "required"

	// MinPasswordLength applies to password changes.
	MinPasswordLength = 6
)

// Validate returns field errors for a signup body, or nil.
func (r SignupRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.FirstName) == "" {
		errs["firstName"] = reasonRequired
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs["lastName"] = reasonRequired
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = reasonRequired
	}
	if r.Password == "" {
		errs["password"] = reasonRequired
	}
	switch strings.ToLower(r.Role) {
	case "", "student", "admin":
	default:
		errs["role"] = "must be student or admin"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate returns field errors for a login body, or nil.
func (r LoginRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = reasonRequired
	}
	if r.Password == "" {
		errs["password"] = reasonRequired
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate returns field errors for a password change, or nil.
func (r ChangePasswordRequest) Validate() map[string]string {
	errs := make(map[string]string)
	if r.CurrentPassword == "" {
		errs["currentPassword"] = reasonRequired
	}
	switch {
	case r.NewPassword == "":
		errs["newPassword"] = reasonRequired
	case len(r.NewPassword) < MinPasswordLength:
		errs["newPassword"] = "must be at least 6 characters long"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks the fields that are present. With create set, title,
// description, instructor and category must be present and non-blank.
func (r CourseRequest) Validate(create bool) map[string]string {
	errs := make(map[string]string)

	required := map[string]*string{
		"title":       r.Title,
		"description": r.Description,
		"instructor":  r.Instructor,
		"category":    r.Category,
	}
	for field, v := range required {
		if v == nil {
			if create {
				errs[field] = reasonRequired
			}
			continue
		}
		if strings.TrimSpace(*v) == "" {
			errs[field] = reasonRequired
		}
	}

	if r.Price != nil && *r.Price < 0 {
		errs["price"] = "must not be negative"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Validate checks a review body. With create set, both rating and comment
// are required.
func (r ReviewRequest) Validate(create bool) map[string]string {
	errs := make(map[string]string)

	switch {
	case r.Rating == nil:
		if create {
			errs["rating"] = reasonRequired
		}
	case *r.Rating < 1 || *r.Rating > 5:
		errs["rating"] = "must be between 1 and 5"
	}

	switch {
	case r.Comment == nil:
		if create {
			errs["comment"] = reasonRequired
		}
	case strings.TrimSpace(*r.Comment) == "" && create:
		errs["comment"] = reasonRequired
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
