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

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	service *service.UserService
	log     *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// ListUsers handles GET /users/all
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.log.Error("failed to list users", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, models.NewUserResponses(users), h.log)
}

// GetUser handles GET /users/{username}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	user, err := h.service.GetUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "User not found", h.log)
			return
		}
		h.log.Error("failed to get user", "username", username, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, models.NewUserResponse(user), h.log)
}

// SaveUser handles POST /users/save
func (h *UserHandler) SaveUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	user, err := h.service.SaveUser(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingKey):
			WriteError(w, http.StatusBadRequest, "Username is required", h.log)
		case errors.Is(err, service.ErrEmptyPassword):
			WriteError(w, http.StatusBadRequest, "Password is required", h.log)
		default:
			h.log.Error("failed to save user", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	h.log.Info("user saved", "username", user.Username)
	WriteJSON(w, http.StatusOK, models.NewUserResponse(user), h.log)
}

// UpdateUser handles PUT /users/update/{username}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), req, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "User not found", h.log)
			return
		}
		h.log.Error("failed to update user", "username", username, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, models.NewUserResponse(user), h.log)
}

// DeleteUser handles DELETE /users/delete/{username}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.service.DeleteUser(r.Context(), username); err != nil {
		h.log.Error("failed to delete user", "username", username, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetWishlist handles GET /users/{username}/wishlist
func (h *UserHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	products, err := h.service.GetWishlist(r.Context(), username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, http.StatusNotFound, "User not found", h.log)
			return
		}
		h.log.Error("failed to resolve wishlist", "username", username, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	WriteJSON(w, http.StatusOK, products, h.log)
}
