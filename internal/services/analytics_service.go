package services

import (
	"github.com/evertonab28/finance/internal/store"
)

// analyticsService exposes the store's aggregation queries. Every call
// recomputes from the full transaction set; nothing is cached.
type analyticsService struct {
	store *store.Store
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(s *store.Store) AnalyticsServicer {
	return &analyticsService{store: s}
}

func (s *analyticsService) GetFinancialSummary() (store.FinancialSummary, error) {
	return s.store.GetFinancialSummary(), nil
}

func (s *analyticsService) GetMonthlyRevenueExpenses(months int) ([]store.MonthlyRevenueExpense, error) {
	return s.store.GetMonthlyRevenueExpenses(months), nil
}

func (s *analyticsService) GetExpensesByCategory() ([]store.CategoryExpense, error) {
	return s.store.GetExpensesByCategory(), nil
}
