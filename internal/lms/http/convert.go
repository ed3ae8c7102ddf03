package http

import (
	"github.com/aussiebroadwan/lms/internal/lms/domain"
	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/aussiebroadwan/lms/pkg/lmsapi"
)

func toUser(u domain.User) lmsapi.User {
	return lmsapi.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		IsBlocked: u.Blocked,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTokenIdentity(c jwtx.Claims) lmsapi.TokenIdentity {
	return lmsapi.TokenIdentity{
		ID:        c.UserID,
		Role:      c.Role,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
	}
}

func toCourse(c domain.Course) lmsapi.Course {
	mats := make([]lmsapi.Material, len(c.Materials))
	for i, m := range c.Materials {
		mats[i] = lmsapi.Material{Topic: m.Topic, PDFURL: m.PDFURL}
	}
	return lmsapi.Course{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Instructor:  c.Instructor,
		Category:    c.Category,
		Duration:    c.Duration,
		Level:       c.Level,
		Price:       c.Price,
		ImageURL:    c.ImageURL,
		Materials:   mats,
		Assignment:  c.Assignment,
		IsAvailable: c.Available,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCoursePatch(req lmsapi.CourseRequest) domain.CoursePatch {
	p := domain.CoursePatch{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Category:    req.Category,
		Duration:    req.Duration,
		Level:       req.Level,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Assignment:  req.Assignment,
		Available:   req.IsAvailable,
	}
	if req.Materials != nil {
		mats := make([]domain.Material, len(*req.Materials))
		for i, m := range *req.Materials {
			mats[i] = domain.Material{Topic: m.Topic, PDFURL: m.PDFURL}
		}
		p.Materials = &mats
	}
	return p
}

func toReview(r domain.Review) lmsapi.Review {
	return lmsapi.Review{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Email:     r.Email,
		Course:    r.Course,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toReviewWithAuthor(r domain.ReviewWithAuthor) lmsapi.Review {
	out := toReview(r.Review)
	out.Author = &lmsapi.ReviewAuthor{
		FirstName: r.Author.FirstName,
		LastName:  r.Author.LastName,
		Email:     r.Author.Email,
	}
	return out
}
