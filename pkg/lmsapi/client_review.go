package lmsapi

import (
	"context"
	"net/http"
	"net/url"
)

func (s *Session) Reviews(ctx context.Context) ([]Review, error) {
	var out []Review
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/reviews", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) MyReviews(ctx context.Context) ([]Review, error) {
	var out []Review
	if err := s.client.doJSON(ctx, http.MethodGet, "/api/reviews/my-reviews", s.token, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) CreateReview(ctx context.Context, req ReviewRequest) (*ReviewResponse, error) {
	var out ReviewResponse
	if err := s.client.doJSON(ctx, http.MethodPost, "/api/reviews", s.token, req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) UpdateReview(ctx context.Context, id string, req ReviewRequest) (*ReviewResponse, error) {
	var out ReviewResponse
	if err := s.client.doJSON(ctx, http.MethodPut, "/api/reviews/"+url.PathEscape(id), s.token, req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteReview(ctx context.Context, id string) error {
	return s.client.doJSON(ctx, http.MethodDelete, "/api/reviews/"+url.PathEscape(id), s.token, nil, nil, http.StatusOK)
}
