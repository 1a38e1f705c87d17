package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/repository"
	"github.com/zynoshop/storefront-backend/internal/service"
)

// CartItemHandler handles cart-item-related HTTP requests
type CartItemHandler struct {
	service *service.CartItemService
	log     *slog.Logger
}

// NewCartItemHandler creates a new cart item handler
func NewCartItemHandler(service *service.CartItemService, log *slog.Logger) *CartItemHandler {
	return &CartItemHandler{
		service: service,
		log:     log,
	}
}

// ListCartItems handles GET /cart-items/all
func (h *CartItemHandler) ListCartItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCartItems(r.Context())
	if err != nil {
		h.log.Error("failed to list cart items", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, items, h.log)
}

// GetCartItem handles GET /cart-items/{id}
func (h *CartItemHandler) GetCartItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.service.GetCartItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Cart item not found", h.log)
			return
		}
		h.log.Error("failed to get cart item", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, item, h.log)
}

// AddCartItem handles POST /cart-items/add
func (h *CartItemHandler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	saved, err := h.service.AddCartItem(r.Context(), item)
	if err != nil {
		h.log.Error("failed to add cart item", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("cart item added", "id", saved.ID, "productId", saved.ProductID)
	WriteJSON(w, http.StatusOK, saved, h.log)
}

// UpdateCartItem handles PUT /cart-items/{id}
func (h *CartItemHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var item models.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	updated, err := h.service.UpdateCartItem(r.Context(), item, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Cart item not found", h.log)
			return
		}
		h.log.Error("failed to update cart item", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, updated, h.log)
}

// RemoveCartItem handles DELETE /cart-items/remove/{id}
func (h *CartItemHandler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.RemoveCartItem(r.Context(), id); err != nil {
		h.log.Error("failed to remove cart item", "id", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetCartItemsByUser handles GET /cart-items/user/{userId}
func (h *CartItemHandler) GetCartItemsByUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "userId")

	items, err := h.service.GetCartItemsByUser(r.Context(), username)
	if err != nil {
		h.log.Error("failed to filter cart items by user", "username", username, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, items, h.log)
}

// GetCartItemsByProductID handles GET /cart-items/product/{productId}
func (h *CartItemHandler) GetCartItemsByProductID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	items, err := h.service.GetCartItemsByProductID(r.Context(), productID)
	if err != nil {
		h.log.Error("failed to filter cart items by product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, items, h.log)
}

// GetCartItemsByCategory handles GET /cart-items/category/{category}
func (h *CartItemHandler) GetCartItemsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	items, err := h.service.GetCartItemsByCategory(r.Context(), category)
	if err != nil {
		h.log.Error("failed to filter cart items by category", "category", category, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, items, h.log)
}

// GetCartItemsByName handles GET /cart-items/name/{name}
func (h *CartItemHandler) GetCartItemsByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	items, err := h.service.GetCartItemsByName(r.Context(), name)
	if err != nil {
		h.log.Error("failed to filter cart items by name", "name", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, items, h.log)
}

// GetCartItemsByPriceRange handles GET /cart-items/price-range?minPrice=&maxPrice=
func (h *CartItemHandler) GetCartItemsByPriceRange(w http.ResponseWriter, r *http.Request) {
	minPrice, maxPrice, ok := parsePriceRange(w, r, h.log)
	if !ok {
		return
	}

	items, err := h.service.GetCartItemsByPriceRange(r.Context(), minPrice, maxPrice)
	if err != nil {
		h.log.Error("failed to filter cart items by price range", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, items, h.log)
}
