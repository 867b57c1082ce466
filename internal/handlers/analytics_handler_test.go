package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/evertonab28/finance/internal/store"
)

// --- mock service ---

type mockAnalyticsService struct {
	getFinancialSummaryFn       func() (store.FinancialSummary, error)
	getMonthlyRevenueExpensesFn func(months int) ([]store.MonthlyRevenueExpense, error)
	getExpensesByCategoryFn     func() ([]store.CategoryExpense, error)
}

func (m *mockAnalyticsService) GetFinancialSummary() (store.FinancialSummary, error) {
	if m.getFinancialSummaryFn != nil {
		return m.getFinancialSummaryFn()
	}
	return store.FinancialSummary{}, nil
}

func (m *mockAnalyticsService) GetMonthlyRevenueExpenses(months int) ([]store.MonthlyRevenueExpense, error) {
	if m.getMonthlyRevenueExpensesFn != nil {
		return m.getMonthlyRevenueExpensesFn(months)
	}
	return []store.MonthlyRevenueExpense{}, nil
}

func (m *mockAnalyticsService) GetExpensesByCategory() ([]store.CategoryExpense, error) {
	if m.getExpensesByCategoryFn != nil {
		return m.getExpensesByCategoryFn()
	}
	return []store.CategoryExpense{}, nil
}

func setupAnalyticsRouter(handler *AnalyticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/analytics/financial-summary", handler.GetFinancialSummary)
	r.GET("/analytics/monthly-revenue-expenses", handler.GetMonthlyRevenueExpenses)
	r.GET("/analytics/expenses-by-category", handler.GetExpensesByCategory)
	return r
}

// --- tests ---

func TestAnalyticsHandler_GetFinancialSummary(t *testing.T) {
	svc := &mockAnalyticsService{
		getFinancialSummaryFn: func() (store.FinancialSummary, error) {
			return store.FinancialSummary{TotalReceitas: 4500, TotalDespesas: 1200, Saldo: 3300}, nil
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	rec := doRequest(r, "GET", "/analytics/financial-summary", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["totalReceitas"] != float64(4500) || result["totalDespesas"] != float64(1200) || result["saldo"] != float64(3300) {
		t.Errorf("unexpected summary body: %v", result)
	}
}

func TestAnalyticsHandler_GetMonthlyRevenueExpenses(t *testing.T) {
	t.Run("passes months to the service", func(t *testing.T) {
		var captured int
		svc := &mockAnalyticsService{
			getMonthlyRevenueExpensesFn: func(months int) ([]store.MonthlyRevenueExpense, error) {
				captured = months
				return []store.MonthlyRevenueExpense{}, nil
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/monthly-revenue-expenses?months=3", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured != 3 {
			t.Errorf("expected months 3, got %d", captured)
		}
	})

	t.Run("defaults months when unparsable", func(t *testing.T) {
		var captured int
		svc := &mockAnalyticsService{
			getMonthlyRevenueExpensesFn: func(months int) ([]store.MonthlyRevenueExpense, error) {
				captured = months
				return []store.MonthlyRevenueExpense{}, nil
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/monthly-revenue-expenses?months=abc", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured != store.DefaultMonths {
			t.Errorf("expected default months %d, got %d", store.DefaultMonths, captured)
		}
	})

	t.Run("returns points in order", func(t *testing.T) {
		svc := &mockAnalyticsService{
			getMonthlyRevenueExpensesFn: func(_ int) ([]store.MonthlyRevenueExpense, error) {
				return []store.MonthlyRevenueExpense{
					{Month: "nov", Receitas: 4500, Despesas: 900},
					{Month: "dez", Receitas: 4500, Despesas: 1530.90},
				}, nil
			},
		}
		r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

		rec := doRequest(r, "GET", "/analytics/monthly-revenue-expenses", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSONArray(t, rec)
		if len(result) != 2 {
			t.Fatalf("expected 2 points, got %d", len(result))
		}
		first := result[0].(map[string]interface{})
		if first["month"] != "nov" {
			t.Errorf("expected first month nov, got %v", first["month"])
		}
	})
}

func TestAnalyticsHandler_GetExpensesByCategory(t *testing.T) {
	svc := &mockAnalyticsService{
		getExpensesByCategoryFn: func() ([]store.CategoryExpense, error) {
			return []store.CategoryExpense{
				{Category: "Moradia", Amount: 1200, Percentage: 78.4},
				{Category: "Alimentação", Amount: 285.9, Percentage: 18.68},
			}, nil
		},
	}
	r := setupAnalyticsRouter(NewAnalyticsHandler(svc))

	rec := doRequest(r, "GET", "/analytics/expenses-by-category", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSONArray(t, rec)
	if len(result) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(result))
	}
	first := result[0].(map[string]interface{})
	if first["category"] != "Moradia" || first["amount"] != float64(1200) {
		t.Errorf("unexpected first group: %v", first)
	}
}
