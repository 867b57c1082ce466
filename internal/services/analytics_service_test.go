package services

import (
	"testing"
	"time"

	"github.com/evertonab28/finance/internal/models"
	"github.com/evertonab28/finance/internal/testutil"
)

func TestGetFinancialSummary(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewAnalyticsService(s)
	category := testutil.CreateTestCategory(t, s, models.CategoryTypeDespesa)
	testutil.CreateTestTransaction(t, s, models.TransactionTypeReceita, "4500.00", category.ID, time.Now())
	testutil.CreateTestTransaction(t, s, models.TransactionTypeDespesa, "1200.00", category.ID, time.Now())

	summary, err := svc.GetFinancialSummary()
	testutil.AssertNoError(t, err)

	if summary.TotalReceitas != 4500 || summary.TotalDespesas != 1200 || summary.Saldo != 3300 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestGetMonthlyRevenueExpenses(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewAnalyticsService(s)

	monthly, err := svc.GetMonthlyRevenueExpenses(3)
	testutil.AssertNoError(t, err)

	if len(monthly) != 3 {
		t.Errorf("expected 3 months, got %d", len(monthly))
	}
}

func TestGetExpensesByCategory(t *testing.T) {
	s := testutil.NewTestStore(t)
	svc := NewAnalyticsService(s)
	category := testutil.CreateTestCategoryWithName(t, s, "Transporte", models.CategoryTypeDespesa)
	testutil.CreateTestTransaction(t, s, models.TransactionTypeDespesa, "400.00", category.ID, time.Now())

	expenses, err := svc.GetExpensesByCategory()
	testutil.AssertNoError(t, err)

	if len(expenses) != 1 || expenses[0].Category != "Transporte" || expenses[0].Percentage != 100 {
		t.Errorf("unexpected expenses: %+v", expenses)
	}
}
