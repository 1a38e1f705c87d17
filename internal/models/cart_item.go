package models

// CartItem links a user to a product they intend to buy. Either reference
// may be empty or dangling; filters treat that as a missing relationship.
type CartItem struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (c CartItem) Key() string { return c.ID }
