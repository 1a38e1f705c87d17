package service

import (
	"context"

	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/query"
	"github.com/zynoshop/storefront-backend/internal/repository"
)

// ProductService handles business logic for products.
//
// The review- and order-derived filters join through their stores with a
// full scan per product, so they cost O(N*M). Fine at catalog scale.
type ProductService struct {
	products repository.Store[string, models.Product]
	reviews  repository.Store[string, models.Review]
	orders   repository.Store[string, models.Order]
}

// NewProductService creates a new product service
func NewProductService(
	products repository.Store[string, models.Product],
	reviews repository.Store[string, models.Review],
	orders repository.Store[string, models.Order],
) *ProductService {
	return &ProductService{
		products: products,
		reviews:  reviews,
		orders:   orders,
	}
}

// SaveProduct inserts or replaces a product by its ID
func (s *ProductService) SaveProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if product.ProductID == "" {
		return models.Product{}, ErrMissingKey
	}
	return s.products.Save(ctx, product)
}

// ListProducts returns all products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.products.FindAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	return s.products.FindByID(ctx, id)
}

// UpdateProduct overwrites name, description, price and category of an
// existing product. Stock quantity and the key are left untouched.
// Returns repository.ErrNotFound when the ID is unknown.
func (s *ProductService) UpdateProduct(ctx context.Context, product models.Product, id string) (models.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	existing.ProductName = product.ProductName
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Category = product.Category

	return s.products.Save(ctx, existing)
}

// DeleteProduct removes a product; unknown IDs are a no-op
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.products.DeleteByID(ctx, id)
}

// GetProductsByCategory returns products whose category matches exactly
func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return p.Category == category
	}), nil
}

// GetProductsByPriceRange returns products priced within [minPrice, maxPrice].
// Both bounds are inclusive; an inverted range yields an empty result.
func (s *ProductService) GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return query.InRange(p.Price, minPrice, maxPrice)
	}), nil
}

// GetProductsByName returns products whose name contains the given text, ignoring case
func (s *ProductService) GetProductsByName(ctx context.Context, name string) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return query.ContainsFold(p.ProductName, name)
	}), nil
}

// GetProductsByDescription returns products whose description contains the given text, ignoring case
func (s *ProductService) GetProductsByDescription(ctx context.Context, description string) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return query.ContainsFold(p.Description, description)
	}), nil
}

// GetProductsByRating returns products with at least one review rated at or
// above the given rating, which may be fractional. Products with no reviews
// never match.
func (s *ProductService) GetProductsByRating(ctx context.Context, rating float64) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return query.Any(reviews, func(r models.Review) bool {
			return r.ProductID == p.ProductID && float64(r.Rating) >= rating
		})
	}), nil
}

// GetProductsByReviewContent returns products with at least one review whose
// content contains the given text, ignoring case
func (s *ProductService) GetProductsByReviewContent(ctx context.Context, content string) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return query.Any(reviews, func(r models.Review) bool {
			return r.ProductID == p.ProductID && query.ContainsFold(r.Content, content)
		})
	}), nil
}

// GetProductsByReviewer returns products reviewed by the given user
func (s *ProductService) GetProductsByReviewer(ctx context.Context, username string) ([]models.Product, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return query.Any(reviews, func(r models.Review) bool {
			return r.ProductID == p.ProductID && r.Username == username
		})
	}), nil
}

// GetProductsByOrderID returns products that appear in the given order
func (s *ProductService) GetProductsByOrderID(ctx context.Context, orderID string) ([]models.Product, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(products, func(p models.Product) bool {
		return query.Any(order.ProductIDs, func(id string) bool {
			return id == p.ProductID
		})
	}), nil
}
