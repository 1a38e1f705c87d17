package service

import (
	"context"

	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/query"
	"github.com/zynoshop/storefront-backend/internal/repository"
)

// OrderService handles business logic for orders
type OrderService struct {
	orders repository.Store[string, models.Order]
}

// NewOrderService creates a new order service
func NewOrderService(orders repository.Store[string, models.Order]) *OrderService {
	return &OrderService{
		orders: orders,
	}
}

// SaveOrder inserts or replaces an order by its ID
func (s *OrderService) SaveOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if order.OrderID == "" {
		return models.Order{}, ErrMissingKey
	}
	return s.orders.Save(ctx, order)
}

// ListOrders returns all orders
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

// GetOrder returns an order by ID
func (s *OrderService) GetOrder(ctx context.Context, id string) (models.Order, error) {
	return s.orders.FindByID(ctx, id)
}

// UpdateOrder overwrites order date, total amount, user and product list of
// an existing order. Address, quantity and delivery date keep their values.
// Returns repository.ErrNotFound when the ID is unknown.
func (s *OrderService) UpdateOrder(ctx context.Context, order models.Order, id string) (models.Order, error) {
	existing, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	existing.OrderDate = order.OrderDate
	existing.TotalAmount = order.TotalAmount
	existing.Username = order.Username
	existing.ProductIDs = order.ProductIDs

	return s.orders.Save(ctx, existing)
}

// DeleteOrder removes an order; unknown IDs are a no-op
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.DeleteByID(ctx, id)
}

// GetOrdersByUser returns orders placed by the given user
func (s *OrderService) GetOrdersByUser(ctx context.Context, username string) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(orders, func(o models.Order) bool {
		return o.Username != "" && o.Username == username
	}), nil
}

// GetOrdersByProductID returns orders whose product list contains the given product
func (s *OrderService) GetOrdersByProductID(ctx context.Context, productID string) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return query.Filter(orders, func(o models.Order) bool {
		return query.Any(o.ProductIDs, func(id string) bool {
			return id == productID
		})
	}), nil
}
