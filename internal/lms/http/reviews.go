package http

import (
	"net/http"

	"github.com/aussiebroadwan/lms/internal/lms/service"
	"github.com/aussiebroadwan/lms/pkg/httpx"
	"github.com/aussiebroadwan/lms/pkg/lmsapi"
)

type ReviewHandler struct {
	ReviewService *service.ReviewService
}

// HandleList godoc
//
//	@Summary		List all reviews
//	@Description	Newest first. author is the reviewer's current record, or "Deleted User".
//	@Tags			Reviews
//	@Produce		json
//	@Success		200	{array}		lmsapi.Review
//	@Failure		401	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/reviews [get].
func (h *ReviewHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.ReviewService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "Failed to fetch reviews")
		return
	}

	out := make([]lmsapi.Review, len(reviews))
	for i, rv := range reviews {
		out[i] = toReviewWithAuthor(rv)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleListMine godoc
//
//	@Summary		List the current user's reviews
//	@Tags			Reviews
//	@Produce		json
//	@Success		200	{array}		lmsapi.Review
//	@Failure		401	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/reviews/my-reviews [get].
func (h *ReviewHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	c, _ := httpx.ClaimsFromContext(r.Context())

	reviews, err := h.ReviewService.ListMine(r.Context(), c.UserID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch reviews")
		return
	}

	out := make([]lmsapi.Review, len(reviews))
	for i, rv := range reviews {
		out[i] = toReview(rv)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Submit a review
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			body	body		lmsapi.ReviewRequest	true	"Rating 1-5 and comment"
//	@Success		201		{object}	lmsapi.ReviewResponse
//	@Failure		400		{object}	lmsapi.APIError
//	@Failure		404		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/reviews [post].
func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	c, _ := httpx.ClaimsFromContext(r.Context())

	var req lmsapi.ReviewRequest
	if !decode(w, r, &req) {
		return
	}
	if errs := req.Validate(true); errs != nil {
		invalidFields(w, errs)
		return
	}

	rv, err := h.ReviewService.Create(r.Context(), c.UserID, *req.Rating, *req.Comment)
	if err != nil {
		writeError(w, r, err, "Failed to submit review")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, lmsapi.ReviewResponse{
		Message: "Review submitted successfully",
		Review:  toReview(rv),
	})
}

// HandleUpdate godoc
//
//	@Summary		Update a review
//	@Description	Only the author or an admin may update. A blank comment keeps the old one.
//	@Tags			Reviews
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Review ID"
//	@Param			body	body		lmsapi.ReviewRequest	true	"Fields to change"
//	@Success		200		{object}	lmsapi.ReviewResponse
//	@Failure		403		{object}	lmsapi.APIError
//	@Failure		404		{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/reviews/{id} [put].
func (h *ReviewHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	c, _ := httpx.ClaimsFromContext(r.Context())

	var req lmsapi.ReviewRequest
	if !decode(w, r, &req) {
		return
	}
	if errs := req.Validate(false); errs != nil {
		invalidFields(w, errs)
		return
	}

	rv, err := h.ReviewService.Update(r.Context(), service.ActorFromClaims(c), r.PathValue("id"), req.Rating, req.Comment)
	if err != nil {
		writeError(w, r, err, "Failed to update review")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lmsapi.ReviewResponse{
		Message: "Review updated successfully",
		Review:  toReview(rv),
	})
}

// HandleDelete godoc
//
//	@Summary		Delete a review
//	@Description	Only the author or an admin may delete.
//	@Tags			Reviews
//	@Produce		json
//	@Param			id	path		string	true	"Review ID"
//	@Success		200	{object}	lmsapi.MessageResponse
//	@Failure		403	{object}	lmsapi.APIError
//	@Failure		404	{object}	lmsapi.APIError
//	@Security		BearerAuth
//	@Router			/api/reviews/{id} [delete].
func (h *ReviewHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	c, _ := httpx.ClaimsFromContext(r.Context())

	if err := h.ReviewService.Delete(r.Context(), service.ActorFromClaims(c), r.PathValue("id")); err != nil {
		writeError(w, r, err, "Failed to delete review")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, lmsapi.MessageResponse{Message: "Review deleted successfully"})
}
