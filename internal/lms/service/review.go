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
	"github.com/aussiebroadwan/lms/pkg/jwtx"
	"github.com/aussiebroadwan/lms/pkg/slogx"
)

// Actor is whoever is making the request.
type Actor struct {
	UserID string
	Admin  bool
}

func ActorFromClaims(c jwtx.Claims) Actor {
	return Actor{UserID: c.UserID, Admin: c.IsAdmin()}
}

func (a Actor) canModify(r domain.Review) bool {
	return a.Admin || a.UserID == r.UserID
}

type ReviewService struct {
	Store store.Store
	Clock Clock
}

// Create stores a review by userID. Name and email are copied from the
// user's current record.
func (s *ReviewService) Create(ctx context.Context, userID string, rating int, comment string) (domain.Review, error) {
	errs := make(map[string]string)
	if rating < domain.MinRating || rating > domain.MaxRating {
		errs["rating"] = "must be between 1 and 5"
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		errs["comment"] = "required"
	}
	if err := invalid(errs); err != nil {
		return domain.Review{}, err
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.Review{}, userLookupErr(err)
	}

	now := s.Clock.now()
	r := domain.Review{
		ID:        idx.NewAt(now).String(),
		UserID:    u.ID,
		Name:      u.FullName(),
		Email:     u.Email,
		Course:    domain.NoCourse,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Reviews().CreateReview(ctx, r); err != nil {
		return domain.Review{}, fmt.Errorf("create review: %w", err)
	}

	slogx.FromContext(ctx).Info("review created", slog.String("review_id", r.ID))
	return r, nil
}

// List returns all reviews, newest first.
func (s *ReviewService) List(ctx context.Context) ([]domain.ReviewWithAuthor, error) {
	return s.Store.Reviews().ListReviews(ctx)
}

// ListMine returns the reviews written by userID, newest first.
func (s *ReviewService) ListMine(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.Store.Reviews().ListReviewsByUser(ctx, userID)
}

// Update changes rating and/or comment. A blank comment leaves the old one.
func (s *ReviewService) Update(ctx context.Context, actor Actor, id string, rating *int, comment *string) (domain.Review, error) {
	if rating != nil && (*rating < domain.MinRating || *rating > domain.MaxRating) {
		return domain.Review{}, invalid(map[string]string{"rating": "must be between 1 and 5"})
	}

	var out domain.Review
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		r, err := tx.Reviews().GetReviewByID(ctx, id)
		if err != nil {
			return reviewLookupErr(err)
		}
		if !actor.canModify(r) {
			return because(ErrForbidden, "You do not have permission to update this review")
		}

		if rating != nil {
			r.Rating = *rating
		}
		if comment != nil && strings.TrimSpace(*comment) != "" {
			r.Comment = strings.TrimSpace(*comment)
		}
		r.UpdatedAt = s.Clock.now()

		out = r
		return tx.Reviews().UpdateReview(ctx, r)
	})
	if err != nil {
		return domain.Review{}, err
	}
	return out, nil
}

func (s *ReviewService) Delete(ctx context.Context, actor Actor, id string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		r, err := tx.Reviews().GetReviewByID(ctx, id)
		if err != nil {
			return reviewLookupErr(err)
		}
		if !actor.canModify(r) {
			return because(ErrForbidden, "You do not have permission to delete this review")
		}
		return tx.Reviews().DeleteReview(ctx, id)
	})
}

func reviewLookupErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return because(ErrNotFound, "Review not found")
	}
	return err
}
