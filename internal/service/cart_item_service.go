package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/query"
	"github.com/zynoshop/storefront-backend/internal/repository"
)

// CartItemService handles business logic for cart items.
//
// Filters derived from the referenced product resolve it through the product
// store; an item whose product reference is empty or dangling never matches.
type CartItemService struct {
	cartItems repository.Store[string, models.CartItem]
	products  repository.Store[string, models.Product]
}

// NewCartItemService creates a new cart item service
func NewCartItemService(
	cartItems repository.Store[string, models.CartItem],
	products repository.Store[string, models.Product],
) *CartItemService {
	return &CartItemService{
		cartItems: cartItems,
		products:  products,
	}
}

// AddCartItem inserts or replaces a cart item, generating an ID when the
// caller supplies none
func (s *CartItemService) AddCartItem(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	return s.cartItems.Save(ctx, item)
}

// ListCartItems returns all cart items
func (s *CartItemService) ListCartItems(ctx context.Context) ([]models.CartItem, error) {
	return s.cartItems.FindAll(ctx)
}

// GetCartItem returns a cart item by ID
func (s *CartItemService) GetCartItem(ctx context.Context, id string) (models.CartItem, error) {
	return s.cartItems.FindByID(ctx, id)
}

// UpdateCartItem overwrites the product reference, user reference and
// quantity of an existing cart item. Returns repository.ErrNotFound when
// the ID is unknown.
func (s *CartItemService) UpdateCartItem(ctx context.Context, item models.CartItem, id string) (models.CartItem, error) {
	existing, err := s.cartItems.FindByID(ctx, id)
	if err != nil {
		return models.CartItem{}, err
	}

	existing.ProductID = item.ProductID
	existing.Username = item.Username
	existing.Quantity = item.Quantity

	return s.cartItems.Save(ctx, existing)
}

// RemoveCartItem removes a cart item; unknown IDs are a no-op
func (s *CartItemService) RemoveCartItem(ctx context.Context, id string) error {
	return s.cartItems.DeleteByID(ctx, id)
}

// GetCartItemsByUser returns cart items belonging to the given user
func (s *CartItemService) GetCartItemsByUser(ctx context.Context, username string) ([]models.CartItem, error) {
	items, err := s.cartItems.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(items, func(c models.CartItem) bool {
		return c.Username != "" && c.Username == username
	}), nil
}

// GetCartItemsByProductID returns cart items referencing the given product
func (s *CartItemService) GetCartItemsByProductID(ctx context.Context, productID string) ([]models.CartItem, error) {
	items, err := s.cartItems.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(items, func(c models.CartItem) bool {
		return c.ProductID != "" && c.ProductID == productID
	}), nil
}

// GetCartItemsByCategory returns cart items whose product is in the given category
func (s *CartItemService) GetCartItemsByCategory(ctx context.Context, category string) ([]models.CartItem, error) {
	return s.filterByProduct(ctx, func(p models.Product) bool {
		return p.Category == category
	})
}

// GetCartItemsByName returns cart items whose product name contains the
// given text, ignoring case
func (s *CartItemService) GetCartItemsByName(ctx context.Context, name string) ([]models.CartItem, error) {
	return s.filterByProduct(ctx, func(p models.Product) bool {
		return query.ContainsFold(p.ProductName, name)
	})
}

// GetCartItemsByDescription returns cart items whose product description
// contains the given text, ignoring case
func (s *CartItemService) GetCartItemsByDescription(ctx context.Context, description string) ([]models.CartItem, error) {
	return s.filterByProduct(ctx, func(p models.Product) bool {
		return query.ContainsFold(p.Description, description)
	})
}

// GetCartItemsByPriceRange returns cart items whose product is priced within
// [minPrice, maxPrice], both bounds inclusive
func (s *CartItemService) GetCartItemsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.CartItem, error) {
	return s.filterByProduct(ctx, func(p models.Product) bool {
		return query.InRange(p.Price, minPrice, maxPrice)
	})
}

// filterByProduct keeps the cart items whose resolved product matches pred.
// Unresolvable references are treated as non-matching, never as an error.
func (s *CartItemService) filterByProduct(ctx context.Context, pred query.Predicate[models.Product]) ([]models.CartItem, error) {
	items, err := s.cartItems.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]models.CartItem, 0)
	for _, item := range items {
		if item.ProductID == "" {
			continue
		}
		product, err := s.products.FindByID(ctx, item.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if pred(product) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
