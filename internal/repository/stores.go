package repository

import (
	"context"
	"database/sql"

	"github.com/zynoshop/storefront-backend/internal/models"
)

// Stores bundles one store per entity type so wiring stays in one place
type Stores struct {
	Users        Store[string, models.User]
	Products     Store[string, models.Product]
	Orders       Store[string, models.Order]
	CartItems    Store[string, models.CartItem]
	Reviews      Store[string, models.Review]
	Images       Store[string, models.Image]
	Transactions Store[string, models.Transaction]
}

// NewMemoryStores creates a full set of in-memory stores
func NewMemoryStores() *Stores {
	return &Stores{
		Users:        NewMemoryStore[string, models.User](),
		Products:     NewMemoryStore[string, models.Product](),
		Orders:       NewMemoryStore[string, models.Order](),
		CartItems:    NewMemoryStore[string, models.CartItem](),
		Reviews:      NewMemoryStore[string, models.Review](),
		Images:       NewMemoryStore[string, models.Image](),
		Transactions: NewMemoryStore[string, models.Transaction](),
	}
}

// NewSQLiteStores creates a full set of stores persisted to the shared database
func NewSQLiteStores(db *sql.DB) (*Stores, error) {
	users, err := NewSQLiteStore[string, models.User](db, "users")
	if err != nil {
		return nil, err
	}
	products, err := NewSQLiteStore[string, models.Product](db, "products")
	if err != nil {
		return nil, err
	}
	orders, err := NewSQLiteStore[string, models.Order](db, "orders")
	if err != nil {
		return nil, err
	}
	cartItems, err := NewSQLiteStore[string, models.CartItem](db, "cart_items")
	if err != nil {
		return nil, err
	}
	reviews, err := NewSQLiteStore[string, models.Review](db, "reviews")
	if err != nil {
		return nil, err
	}
	images, err := NewSQLiteStore[string, models.Image](db, "images")
	if err != nil {
		return nil, err
	}
	transactions, err := NewSQLiteStore[string, models.Transaction](db, "transactions")
	if err != nil {
		return nil, err
	}

	return &Stores{
		Users:        users,
		Products:     products,
		Orders:       orders,
		CartItems:    cartItems,
		Reviews:      reviews,
		Images:       images,
		Transactions: transactions,
	}, nil
}

// SeedProducts loads a starter catalog when the product store is empty.
// Useful for local development; the sqlite backend keeps whatever state
// it restored instead.
func (s *Stores) SeedProducts(ctx context.Context) error {
	existing, err := s.Products.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	seed := []models.Product{
		{ProductID: "P1", ProductName: "Blue Shirt", Category: "Apparel", Description: "Classic cotton shirt in navy blue", Price: 24.99, StockQuantity: 120},
		{ProductID: "P2", ProductName: "Canvas Tote Bag", Category: "Accessories", Description: "Everyday carry tote in natural canvas", Price: 14.50, StockQuantity: 80},
		{ProductID: "P3", ProductName: "Ceramic Mug", Category: "Homeware", Description: "Stoneware mug, holds 350ml", Price: 9.99, StockQuantity: 200},
		{ProductID: "P4", ProductName: "Leather Wallet", Category: "Accessories", Description: "Slim bifold in full-grain leather", Price: 49.00, StockQuantity: 45},
		{ProductID: "P5", ProductName: "Linen Shirt", Category: "Apparel", Description: "Breathable summer shirt in white linen", Price: 39.99, StockQuantity: 60},
		{ProductID: "P6", ProductName: "Desk Lamp", Category: "Homeware", Description: "Adjustable LED lamp with warm light", Price: 32.00, StockQuantity: 30},
	}

	for _, product := range seed {
		if _, err := s.Products.Save(ctx, product); err != nil {
			return err
		}
	}
	return nil
}
