package models

// Product represents an item available in the storefront
type Product struct {
	ProductID     string  `json:"productId"`
	ProductName   string  `json:"productName"`
	Category      string  `json:"category"`
	Description   string  `json:"productDescription"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
}

func (p Product) Key() string { return p.ProductID }
