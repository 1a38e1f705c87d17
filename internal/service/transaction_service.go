package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/zynoshop/storefront-backend/internal/models"
	"github.com/zynoshop/storefront-backend/internal/query"
	"github.com/zynoshop/storefront-backend/internal/repository"
)

// TransactionService handles business logic for payment transactions
type TransactionService struct {
	transactions repository.Store[string, models.Transaction]
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactions repository.Store[string, models.Transaction]) *TransactionService {
	return &TransactionService{
		transactions: transactions,
	}
}

// SaveTransaction inserts or replaces a transaction, generating an ID when
// the caller supplies none
func (s *TransactionService) SaveTransaction(ctx context.Context, txn models.Transaction) (models.Transaction, error) {
	if txn.TransactionID == "" {
		txn.TransactionID = uuid.New().String()
	}
	return s.transactions.Save(ctx, txn)
}

// ListTransactions returns all transactions
func (s *TransactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.transactions.FindAll(ctx)
}

// GetTransaction returns a transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id string) (models.Transaction, error) {
	return s.transactions.FindByID(ctx, id)
}

// UpdateTransaction overwrites amount and payment method of an existing
// transaction; the order reference keeps its value. Returns
// repository.ErrNotFound when the ID is unknown.
func (s *TransactionService) UpdateTransaction(ctx context.Context, txn models.Transaction, id string) (models.Transaction, error) {
	existing, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		return models.Transaction{}, err
	}

	existing.Amount = txn.Amount
	existing.PaymentMethod = txn.PaymentMethod

	return s.transactions.Save(ctx, existing)
}

// DeleteTransaction removes a transaction; unknown IDs are a no-op
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return s.transactions.DeleteByID(ctx, id)
}

// GetTransactionByOrderID returns the transaction paying for the given
// order. The relationship is one-to-one; the first match wins.
func (s *TransactionService) GetTransactionByOrderID(ctx context.Context, orderID string) (models.Transaction, error) {
	transactions, err := s.transactions.FindAll(ctx)
	if err != nil {
		return models.Transaction{}, err
	}
	matched := query.Filter(transactions, func(t models.Transaction) bool {
		return t.OrderID != "" && t.OrderID == orderID
	})
	if len(matched) == 0 {
		return models.Transaction{}, repository.ErrNotFound
	}
	return matched[0], nil
}
