package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/repository"
	"github.com/zynoshop/storefront-backend/internal/service"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	service *service.ReviewService
	log     *slog.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *service.ReviewService, log *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// ListReviews handles GET /reviews/all
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListReviews(r.Context())
	if err != nil {
		h.log.Error("failed to list reviews", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, reviews, h.log)
}

// GetReview handles GET /reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	review, err := h.service.GetReview(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Review not found", h.log)
			return
		}
		h.log.Error("failed to get review", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, review, h.log)
}

// SaveReview handles POST /reviews/save
func (h *ReviewHandler) SaveReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	saved, err := h.service.SaveReview(r.Context(), review)
	if err != nil {
		h.log.Error("failed to save review", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("review saved", "id", saved.ID, "productId", saved.ProductID)
	WriteJSON(w, http.StatusOK, saved, h.log)
}

// UpdateReview handles PUT /reviews/update/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	updated, err := h.service.UpdateReview(r.Context(), review, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Review not found", h.log)
			return
		}
		h.log.Error("failed to update review", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, updated, h.log)
}

// DeleteReview handles DELETE /reviews/delete/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		h.log.Error("failed to delete review", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetReviewsByProductID handles GET /reviews/product/{productId}
func (h *ReviewHandler) GetReviewsByProductID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	reviews, err := h.service.GetReviewsByProductID(r.Context(), productID)
	if err != nil {
		h.log.Error("failed to filter reviews by product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, reviews, h.log)
}

// GetReviewsByUser handles GET /reviews/user/{userId}
func (h *ReviewHandler) GetReviewsByUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "userId")

	reviews, err := h.service.GetReviewsByUser(r.Context(), username)
	if err != nil {
		h.log.Error("failed to filter reviews by user", "username", username, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, reviews, h.log)
}

// GetReviewsByRating handles GET /reviews/rating?rating=
func (h *ReviewHandler) GetReviewsByRating(w http.ResponseWriter, r *http.Request) {
	rating, err := strconv.Atoi(r.URL.Query().Get("rating"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid rating", h.log)
		return
	}

	reviews, err := h.service.GetReviewsByRating(r.Context(), rating)
	if err != nil {
		h.log.Error("failed to filter reviews by rating", "rating", rating, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, reviews, h.log)
}

// GetReviewsByContent handles GET /reviews/content?content=
func (h *ReviewHandler) GetReviewsByContent(w http.ResponseWriter, r *http.Request) {
	content := r.URL.Query().Get("content")

	reviews, err := h.service.GetReviewsByContent(r.Context(), content)
	if err != nil {
		h.log.Error("failed to filter reviews by content", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, reviews, h.log)
}
