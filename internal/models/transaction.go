package models

// Transaction is the payment record for an order (one-to-one)
type Transaction struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	OrderID       string  `json:"orderId"`
}

func (t Transaction) Key() string { return t.TransactionID }
