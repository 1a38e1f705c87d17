package service

import (
	"context"

	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/query"
	"github.com/zynoshop/storefront-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles business logic for users
type UserService struct {
	users    repository.Store[string, models.User]
	products repository.Store[string, models.Product]
}

// NewUserService creates a new user service
func NewUserService(
	users repository.Store[string, models.User],
	products repository.Store[string, models.Product],
) *UserService {
	return &UserService{
		users:    users,
		products: products,
	}
}

// SaveUser inserts or replaces a user. The plaintext password from the
// request is hashed with bcrypt before it is stored.
func (s *UserService) SaveUser(ctx context.Context, req models.UserRequest) (models.User, error) {
	if req.Username == "" {
		return models.User{}, ErrMissingKey
	}
	if req.Password == "" {
		return models.User{}, ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     req.Username,
		Password:     string(hashed),
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Wishlist:     req.Wishlist,
	}
	return s.users.Save(ctx, user)
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

// GetUser returns a user by username
func (s *UserService) GetUser(ctx context.Context, username string) (models.User, error) {
	return s.users.FindByID(ctx, username)
}

// UpdateUser overwrites mobile number, email, first and last name of an
// existing user. Username, password and wishlist are left untouched.
// Returns repository.ErrNotFound when the username is unknown.
func (s *UserService) UpdateUser(ctx context.Context, req models.UserRequest, username string) (models.User, error) {
	existing, err := s.users.FindByID(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	existing.MobileNumber = req.MobileNumber
	existing.Email = req.Email
	existing.FirstName = req.FirstName
	existing.LastName = req.LastName

	return s.users.Save(ctx, existing)
}

// DeleteUser removes a user; unknown usernames are a no-op
func (s *UserService) DeleteUser(ctx context.Context, username string) error {
	return s.users.DeleteByID(ctx, username)
}

// CheckPassword verifies a plaintext password against the stored hash
func (s *UserService) CheckPassword(ctx context.Context, username, password string) (bool, error) {
	user, err := s.users.FindByID(ctx, username)
	if err != nil {
		return false, err
	}
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil, nil
}

// GetWishlist resolves the user's wishlist into products. Entries pointing
// at deleted products are skipped rather than reported.
func (s *UserService) GetWishlist(ctx context.Context, username string) ([]models.Product, error) {
	user, err := s.users.FindByID(ctx, username)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return query.Any(user.Wishlist, func(id string) bool {
			return id == p.ProductID
		})
	}), nil
}
