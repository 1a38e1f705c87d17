package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/query"
	"github.com/zynoshop/storefront-backend/internal/repository"
)

// ReviewService handles business logic for reviews
type ReviewService struct {
	reviews repository.Store[string, models.Review]
}

// NewReviewService creates a new review service
func NewReviewService(reviews repository.Store[string, models.Review]) *ReviewService {
	return &ReviewService{
		reviews: reviews,
	}
}

// SaveReview inserts or replaces a review, generating an ID when the caller
// supplies none
func (s *ReviewService) SaveReview(ctx context.Context, review models.Review) (models.Review, error) {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	return s.reviews.Save(ctx, review)
}

// ListReviews returns all reviews
func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviews.FindAll(ctx)
}

// GetReview returns a review by ID
func (s *ReviewService) GetReview(ctx context.Context, id string) (models.Review, error) {
	return s.reviews.FindByID(ctx, id)
}

// UpdateReview overwrites rating and content of an existing review; the
// user and product references keep their values. Returns
// repository.ErrNotFound when the ID is unknown.
func (s *ReviewService) UpdateReview(ctx context.Context, review models.Review, id string) (models.Review, error) {
	existing, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return models.Review{}, err
	}

	existing.Rating = review.Rating
	existing.Content = review.Content

	return s.reviews.Save(ctx, existing)
}

// DeleteReview removes a review; unknown IDs are a no-op
func (s *ReviewService) DeleteReview(ctx context.Context, id string) error {
	return s.reviews.DeleteByID(ctx, id)
}

// GetReviewsByProductID returns reviews for the given product
func (s *ReviewService) GetReviewsByProductID(ctx context.Context, productID string) ([]models.Review, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(reviews, func(r models.Review) bool {
		return r.ProductID != "" && r.ProductID == productID
	}), nil
}

// GetReviewsByUser returns reviews authored by the given user
func (s *ReviewService) GetReviewsByUser(ctx context.Context, username string) ([]models.Review, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(reviews, func(r models.Review) bool {
		return r.Username != "" && r.Username == username
	}), nil
}

// GetReviewsByRating returns reviews with exactly the given rating
func (s *ReviewService) GetReviewsByRating(ctx context.Context, rating int) ([]models.Review, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(reviews, func(r models.Review) bool {
		return r.Rating == rating
	}), nil
}

// GetReviewsByContent returns reviews whose content contains the given text, ignoring case
func (s *ReviewService) GetReviewsByContent(ctx context.Context, content string) ([]models.Review, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(reviews, func(r models.Review) bool {
		return query.ContainsFold(r.Content, content)
	}), nil
}
