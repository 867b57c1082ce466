package services

import (
	"time"

	"github.com/evertonab28/finance/internal/models"
	"github.com/evertonab28/finance/internal/store"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *int
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(transactionType models.TransactionType, amount string, categoryID int, description, paymentMethod string, date time.Time) (*models.Transaction, error)
	GetTransactions(filter TransactionFilter) ([]models.Transaction, error)
	GetTransactionByID(transactionID int) (*models.Transaction, error)
	UpdateTransaction(transactionID int, patch models.TransactionPatch) (*models.Transaction, error)
	DeleteTransaction(transactionID int) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(name string, categoryType models.CategoryType, parentID *int, color, icon, isActive string) (*models.Category, error)
	GetCategories() ([]models.Category, error)
	GetCategoriesByType(categoryType models.CategoryType) ([]models.Category, error)
	GetCategoryByID(categoryID int) (*models.Category, error)
	UpdateCategory(categoryID int, patch models.CategoryPatch) (*models.Category, error)
	DeleteCategory(categoryID int) error
}

// AnalyticsServicer defines the contract for the aggregate analytics queries.
type AnalyticsServicer interface {
	GetFinancialSummary() (store.FinancialSummary, error)
	GetMonthlyRevenueExpenses(months int) ([]store.MonthlyRevenueExpense, error)
	GetExpensesByCategory() ([]store.CategoryExpense, error)
}
