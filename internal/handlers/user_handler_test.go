package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/repository"
	"github.com/zynoshop/storefront-backend/internal/service"
	"github.com/zynoshop/storefront-backend/pkg/logger"
)

func newUserRouter(t *testing.T) (*chi.Mux, *repository.Stores) {
	t.Helper()
	stores := repository.NewMemoryStores()
	svc := service.NewUserService(stores.Users, stores.Products)
	log := logger.New("error")
	handler := NewUserHandler(svc, log)

	r := chi.NewRouter()
	r.Get("/users/all", handler.ListUsers)
	r.Get("/users/{username}", handler.GetUser)
	r.Get("/users/{username}/wishlist", handler.GetWishlist)
	r.Post("/users/save", handler.SaveUser)
	r.Put("/users/update/{username}", handler.UpdateUser)
	r.Delete("/users/delete/{username}", handler.DeleteUser)
	return r, stores
}

func TestSaveUser_PasswordNeverSerialized(t *testing.T) {
	r, _ := newUserRouter(t)

	body, _ := json.Marshal(models.UserRequest{
		Username: "alice",
		Password: "s3cret",
		Email:    "alice@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/users/save", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "s3cret") || strings.Contains(w.Body.String(), "password") {
		t.Errorf("response leaked password material: %s", w.Body.String())
	}

	// Get must not leak it either
	req = httptest.NewRequest(http.MethodGet, "/users/alice", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("get response leaked password field: %s", w.Body.String())
	}
}

func TestSaveUser_Validation(t *testing.T) {
	r, _ := newUserRouter(t)

	tests := []struct {
		name string
		req  models.UserRequest
	}{
		{"missing username", models.UserRequest{Password: "x"}},
		{"missing password", models.UserRequest{Username: "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.req)
			req := httptest.NewRequest(http.MethodPost, "/users/save", bytes.NewReader(body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	r, _ := newUserRouter(t)

	body, _ := json.Marshal(models.UserRequest{Email: "new@example.com"})
	req := httptest.NewRequest(http.MethodPut, "/users/update/nobody", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

func TestGetWishlist(t *testing.T) {
	r, stores := newUserRouter(t)
	ctx := context.Background()

	if _, err := stores.Products.Save(ctx, models.Product{ProductID: "P1", ProductName: "Blue Shirt"}); err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if _, err := stores.Users.Save(ctx, models.User{Username: "alice", Password: "hash", Wishlist: []string{"P1"}}); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/users/alice/wishlist", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(products) != 1 || products[0].ProductID != "P1" {
		t.Errorf("expected wishlist [P1], got %v", products)
	}
}

func TestDeleteUser_Idempotent(t *testing.T) {
	r, _ := newUserRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/users/delete/nobody", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for idempotent delete, got %d", w.Code)
	}
}
