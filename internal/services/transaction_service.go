package services

import (
	"time"

	apperrors "github.com/evertonab28/finance/internal/errors"
	"github.com/evertonab28/finance/internal/models"
	"github.com/evertonab28/finance/internal/money"
	"github.com/evertonab28/finance/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store *store.Store
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s *store.Store) TransactionServicer {
	return &transactionService{store: s}
}

// CreateTransaction validates and stores a new transaction. The category
// id is not resolved here: aggregation falls back to an unresolved label
// for dangling references, so a well-formed create never fails.
func (s *transactionService) CreateTransaction(
	transactionType models.TransactionType,
	amount string,
	categoryID int,
	description string,
	paymentMethod string,
	date time.Time,
) (*models.Transaction, error) {
	if transactionType != models.TransactionTypeReceita && transactionType != models.TransactionTypeDespesa {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !money.Valid(amount) {
		return nil, apperrors.ErrInvalidAmount
	}
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	transaction := s.store.CreateTransaction(models.Transaction{
		Type:          transactionType,
		Amount:        amount,
		CategoryID:    categoryID,
		Description:   description,
		PaymentMethod: paymentMethod,
		Date:          date,
	})
	return &transaction, nil
}

// GetTransactions retrieves all transactions, newest business date first,
// optionally narrowed by the filter.
func (s *transactionService) GetTransactions(filter TransactionFilter) ([]models.Transaction, error) {
	transactions := s.store.GetTransactions()

	result := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if matchesFilter(t, filter) {
			result = append(result, t)
		}
	}
	return result, nil
}

func matchesFilter(t models.Transaction, f TransactionFilter) bool {
	if f.FromDate != nil && t.Date.Before(*f.FromDate) {
		return false
	}
	if f.ToDate != nil && t.Date.After(*f.ToDate) {
		return false
	}
	if f.Type != nil && t.Type != *f.Type {
		return false
	}
	if f.CategoryID != nil && t.CategoryID != *f.CategoryID {
		return false
	}
	return true
}

// GetTransactionByID retrieves a transaction by id.
func (s *transactionService) GetTransactionByID(transactionID int) (*models.Transaction, error) {
	transaction, ok := s.store.GetTransactionByID(transactionID)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &transaction, nil
}

// UpdateTransaction merges the supplied patch into an existing transaction.
func (s *transactionService) UpdateTransaction(transactionID int, patch models.TransactionPatch) (*models.Transaction, error) {
	if patch.Type != nil && *patch.Type != models.TransactionTypeReceita && *patch.Type != models.TransactionTypeDespesa {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if patch.Amount != nil && !money.Valid(*patch.Amount) {
		return nil, apperrors.ErrInvalidAmount
	}
	if patch.Description != nil && *patch.Description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description cannot be empty")
	}

	transaction, ok := s.store.UpdateTransaction(transactionID, patch)
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction unconditionally.
func (s *transactionService) DeleteTransaction(transactionID int) error {
	if !s.store.DeleteTransaction(transactionID) {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
