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

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.OrderService
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// ListOrders handles GET /orders/all
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.log.Error("failed to list orders", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.log)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to get order", "orderId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, order, h.log)
}

// SaveOrder handles POST /orders/save
func (h *OrderHandler) SaveOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	saved, err := h.service.SaveOrder(r.Context(), order)
	if err != nil {
		if errors.Is(err, service.ErrMissingKey) {
			WriteError(w, http.StatusBadRequest, "Order ID is required", h.log)
			return
		}
		h.log.Error("failed to save order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	h.log.Info("order saved", "orderId", saved.OrderID, "products", len(saved.ProductIDs))
	WriteJSON(w, http.StatusOK, saved, h.log)
}

// UpdateOrder handles PUT /orders/update/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var order models.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	updated, err := h.service.UpdateOrder(r.Context(), order, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to update order", "orderId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, updated, h.log)
}

// DeleteOrder handles DELETE /orders/delete/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		h.log.Error("failed to delete order", "orderId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetOrdersByUser handles GET /orders/user/{userId}
func (h *OrderHandler) GetOrdersByUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "userId")

	orders, err := h.service.GetOrdersByUser(r.Context(), username)
	if err != nil {
		h.log.Error("failed to filter orders by user", "username", username, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.log)
}

// GetOrdersByProductID handles GET /orders/product/{productId}
func (h *OrderHandler) GetOrdersByProductID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	orders, err := h.service.GetOrdersByProductID(r.Context(), productID)
	if err != nil {
		h.log.Error("failed to filter orders by product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, orders, h.log)
}
