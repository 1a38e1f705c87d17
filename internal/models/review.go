package models

// Review is a user's rating and comment on a product
type Review struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Content   string `json:"content"`
}

func (r Review) Key() string { return r.ID }
