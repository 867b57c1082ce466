package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/evertonab28/finance/internal/services"
	"github.com/evertonab28/finance/internal/store"
)

// AnalyticsHandler handles the aggregate analytics requests.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServicer
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService services.AnalyticsServicer) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetFinancialSummary handles the financial summary request
// @Summary     Financial summary
// @Description Total receitas, total despesas, and the resulting saldo over the full history
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {object} store.FinancialSummary "Summary"
// @Router      /analytics/financial-summary [get]
func (h *AnalyticsHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.analyticsService.GetFinancialSummary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetMonthlyRevenueExpenses handles the monthly rollup request
// @Summary     Monthly revenue and expenses
// @Description Receita/despesa totals per trailing calendar month, oldest first
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Param       months query int false "Trailing window in months (default 6)"
// @Success     200 {array} store.MonthlyRevenueExpense "Monthly points"
// @Router      /analytics/monthly-revenue-expenses [get]
func (h *AnalyticsHandler) GetMonthlyRevenueExpenses(c *gin.Context) {
	// Any unparsable or non-positive value falls back to the default window.
	months, err := strconv.Atoi(c.Query("months"))
	if err != nil {
		months = store.DefaultMonths
	}

	data, err := h.analyticsService.GetMonthlyRevenueExpenses(months)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// GetExpensesByCategory handles the expense breakdown request
// @Summary     Expenses by category
// @Description Despesa totals grouped by category with each group's share of the total, largest first
// @Tags        analytics
// @Accept      json
// @Produce     json
// @Success     200 {array} store.CategoryExpense "Expense groups"
// @Router      /analytics/expenses-by-category [get]
func (h *AnalyticsHandler) GetExpensesByCategory(c *gin.Context) {
	data, err := h.analyticsService.GetExpensesByCategory()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
