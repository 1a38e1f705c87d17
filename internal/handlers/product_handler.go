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

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// ListProducts handles GET /products/all
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to get product", "productId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, product, h.log)
}

// SaveProduct handles POST /products/save
func (h *ProductHandler) SaveProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	saved, err := h.service.SaveProduct(r.Context(), product)
	if err != nil {
		if errors.Is(err, service.ErrMissingKey) {
			WriteError(w, http.StatusBadRequest, "Product ID is required", h.log)
			return
		}
		h.log.Error("failed to save product", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("product saved", "productId", saved.ProductID)
	WriteJSON(w, http.StatusOK, saved, h.log)
}

// UpdateProduct handles PUT /products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	updated, err := h.service.UpdateProduct(r.Context(), product, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to update product", "productId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, updated, h.log)
}

// DeleteProduct handles DELETE /products/delete/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		h.log.Error("failed to delete product", "productId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetProductsByCategory handles GET /products/category/{category}
func (h *ProductHandler) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	products, err := h.service.GetProductsByCategory(r.Context(), category)
	if err != nil {
		h.log.Error("failed to filter products by category", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProductsByPriceRange handles GET /products/price-range?minPrice=&maxPrice=
func (h *ProductHandler) GetProductsByPriceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, maxPrice, ok := parsePriceRange(w, r, h.log)
	if !ok {
		return
	}

	products, err := h.service.GetProductsByPriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		h.log.Error("failed to filter products by price range", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProductsByName handles GET /products/name/{name}
func (h *ProductHandler) GetProductsByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	products, err := h.service.GetProductsByName(r.Context(), name)
	if err != nil {
		h.log.Error("failed to filter products by name", "name", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProductsByDescription handles GET /products/description/{description}
func (h *ProductHandler) GetProductsByDescription(w http.ResponseWriter, r *http.Request) {
	description := chi.URLParam(r, "description")

	products, err := h.service.GetProductsByDescription(r.Context(), description)
	if err != nil {
		h.log.Error("failed to filter products by description", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProductsByRating handles GET /products/rating/{rating}. The rating may
// be fractional, e.g. /products/rating/4.5.
func (h *ProductHandler) GetProductsByRating(w http.ResponseWriter, r *http.Request) {
	ratingStr := chi.URLParam(r, "rating")
	rating, err := strconv.ParseFloat(ratingStr, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid rating", h.log)
		return
	}

	products, err := h.service.GetProductsByRating(r.Context(), rating)
	if err != nil {
		h.log.Error("failed to filter products by rating", "rating", rating, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProductsByReviewContent handles GET /products/review-content?content=
func (h *ProductHandler) GetProductsByReviewContent(w http.ResponseWriter, r *http.Request) {
	content := r.URL.Query().Get("content")

	products, err := h.service.GetProductsByReviewContent(r.Context(), content)
	if err != nil {
		h.log.Error("failed to filter products by review content", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProductsByReviewer handles GET /products/reviewer/{userId}
func (h *ProductHandler) GetProductsByReviewer(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "userId")

	products, err := h.service.GetProductsByReviewer(r.Context(), username)
	if err != nil {
		h.log.Error("failed to filter products by reviewer", "username", username, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// GetProductsByOrderID handles GET /products/order/{orderId}
func (h *ProductHandler) GetProductsByOrderID(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	products, err := h.service.GetProductsByOrderID(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to filter products by order", "orderId", orderID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}

// parsePriceRange reads minPrice/maxPrice query params, writing a 400 on
// malformed numbers. Bound ordering is intentionally not validated.
func parsePriceRange(w http.ResponseWriter, r *http.Request, log *slog.Logger) (float64, float64, bool) {
	minPrice, err := strconv.ParseFloat(r.URL.Query().Get("minPrice"), 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid minPrice", log)
		return 0, 0, false
	}
	maxPrice, err := strconv.ParseFloat(r.URL.Query().Get("maxPrice"), 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid maxPrice", log)
		return 0, 0, false
	}
	return minPrice, maxPrice, true
}
