package models

import "time"

// Order represents a placed order. Products are referenced by ID; the
// many-to-many join lives here rather than on the product side.
type Order struct {
	OrderID          string    `json:"orderId"`
	Username         string    `json:"username"`
	Address          string    `json:"address"`
	Quantity         int       `json:"quantity"`
	TotalAmount      float64   `json:"totalAmount"`
	OrderDate        time.Time `json:"orderDate"`
	ExpectedDelivery time.Time `json:"expectedDelivery"`
	ProductIDs       []string  `json:"productIds"`
}

func (o Order) Key() string { return o.OrderID }
