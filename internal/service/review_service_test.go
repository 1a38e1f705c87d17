package service

import (
	"context"
	"errors"
	"testing"

	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/repository"
)

func newReviewFixture(t *testing.T) *ReviewService {
	t.Helper()
	stores := repository.NewMemoryStores()
	svc := NewReviewService(stores.Reviews)
	ctx := context.Background()

	reviews := []models.Review{
		{ID: "R1", Username: "alice", ProductID: "P1", Rating: 5, Content: "Perfect fit"},
		{ID: "R2", Username: "bob", ProductID: "P1", Rating: 3, Content: "Color FADED after washing"},
		{ID: "R3", Username: "bob", ProductID: "P2", Rating: 5, Content: "My favourite mug"},
	}
	for _, r := range reviews {
		if _, err := svc.SaveReview(ctx, r); err != nil {
			t.Fatalf("seed review: %v", err)
		}
	}
	return svc
}

func TestReviewService_SaveGeneratesID(t *testing.T) {
	svc := newReviewFixture(t)

	saved, err := svc.SaveReview(context.Background(), models.Review{Username: "carol", ProductID: "P1", Rating: 4})
	if err != nil {
		t.Fatalf("SaveReview() unexpected error = %v", err)
	}
	if saved.ID == "" {
		t.Error("SaveReview() did not generate an ID")
	}
}

func TestReviewService_GetReviewsByRating_Exact(t *testing.T) {
	svc := newReviewFixture(t)

	reviews, err := svc.GetReviewsByRating(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetReviewsByRating() unexpected error = %v", err)
	}
	if len(reviews) != 2 {
		t.Errorf("GetReviewsByRating(5) = %d reviews, want 2", len(reviews))
	}

	// Exact match, not at-least
	reviews, err = svc.GetReviewsByRating(context.Background(), 4)
	if err != nil {
		t.Fatalf("GetReviewsByRating() unexpected error = %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("GetReviewsByRating(4) = %d reviews, want 0", len(reviews))
	}
}

func TestReviewService_GetReviewsByContent_Fold(t *testing.T) {
	svc := newReviewFixture(t)

	reviews, err := svc.GetReviewsByContent(context.Background(), "faded")
	if err != nil {
		t.Fatalf("GetReviewsByContent() unexpected error = %v", err)
	}
	if len(reviews) != 1 || reviews[0].ID != "R2" {
		t.Errorf("GetReviewsByContent(faded) = %v, want [R2]", reviews)
	}
}

func TestReviewService_GetReviewsByProductAndUser(t *testing.T) {
	svc := newReviewFixture(t)
	ctx := context.Background()

	byProduct, err := svc.GetReviewsByProductID(ctx, "P1")
	if err != nil {
		t.Fatalf("GetReviewsByProductID() unexpected error = %v", err)
	}
	if len(byProduct) != 2 {
		t.Errorf("GetReviewsByProductID(P1) = %d reviews, want 2", len(byProduct))
	}

	byUser, err := svc.GetReviewsByUser(ctx, "bob")
	if err != nil {
		t.Fatalf("GetReviewsByUser() unexpected error = %v", err)
	}
	if len(byUser) != 2 {
		t.Errorf("GetReviewsByUser(bob) = %d reviews, want 2", len(byUser))
	}
}

func TestReviewService_UpdateReview_PartialFieldsOnly(t *testing.T) {
	svc := newReviewFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateReview(ctx, models.Review{
		Username:  "ignored",
		ProductID: "ignored",
		Rating:    1,
		Content:   "changed my mind",
	}, "R1")
	if err != nil {
		t.Fatalf("UpdateReview() unexpected error = %v", err)
	}

	if updated.Rating != 1 || updated.Content != "changed my mind" {
		t.Errorf("UpdateReview() did not copy mutable fields: %+v", updated)
	}
	if updated.Username != "alice" || updated.ProductID != "P1" {
		t.Errorf("UpdateReview() touched the references: %+v", updated)
	}

	_, err = svc.UpdateReview(ctx, models.Review{}, "no-such-review")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateReview() for unknown id = %v, want ErrNotFound", err)
	}
}
