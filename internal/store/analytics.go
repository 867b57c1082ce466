package store

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/evertonab28/finance/internal/models"
	"github.com/evertonab28/finance/internal/money"
)

// DefaultMonths is the trailing window used by the monthly rollup when the
// caller does not supply one.
const DefaultMonths = 6

// unresolvedCategory labels expenses whose category id no longer resolves.
const unresolvedCategory = "Indefinido"

// monthAbbreviations holds the pt-BR three-letter month labels used by the
// monthly rollup.
var monthAbbreviations = [12]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// FinancialSummary totals the whole transaction history.
type FinancialSummary struct {
	TotalReceitas float64 `json:"totalReceitas"`
	TotalDespesas float64 `json:"totalDespesas"`
	Saldo         float64 `json:"saldo"`
}

// MonthlyRevenueExpense is one calendar month of the monthly rollup.
type MonthlyRevenueExpense struct {
	Month    string  `json:"month"`
	Receitas float64 `json:"receitas"`
	Despesas float64 `json:"despesas"`
}

// CategoryExpense is one group of the expenses-by-category breakdown.
type CategoryExpense struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// GetFinancialSummary sums receitas and despesas over the full history and
// returns the resulting balance. Sums are computed exactly on decimals and
// only converted to floats at the boundary.
func (s *Store) GetFinancialSummary() FinancialSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totalReceitas := decimal.Zero
	totalDespesas := decimal.Zero
	for _, t := range s.transactions {
		switch t.Type {
		case models.TransactionTypeReceita:
			totalReceitas = totalReceitas.Add(money.MustParse(t.Amount))
		case models.TransactionTypeDespesa:
			totalDespesas = totalDespesas.Add(money.MustParse(t.Amount))
		}
	}

	return FinancialSummary{
		TotalReceitas: totalReceitas.InexactFloat64(),
		TotalDespesas: totalDespesas.InexactFloat64(),
		Saldo:         totalReceitas.Sub(totalDespesas).InexactFloat64(),
	}
}

// GetMonthlyRevenueExpenses computes receita/despesa totals for each of the
// trailing months calendar months, counting backward from the current month
// inclusive. The result is ordered oldest month first and each point is
// labeled with the pt-BR month abbreviation. Month windows are calendar
// boundaries, not rolling 30-day windows. Values of months below 1 fall
// back to DefaultMonths.
func (s *Store) GetMonthlyRevenueExpenses(months int) []MonthlyRevenueExpense {
	if months < 1 {
		months = DefaultMonths
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	result := make([]MonthlyRevenueExpense, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := currentMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		receitas := decimal.Zero
		despesas := decimal.Zero
		for _, t := range s.transactions {
			if t.Date.Before(monthStart) || t.Date.After(monthEnd) {
				continue
			}
			switch t.Type {
			case models.TransactionTypeReceita:
				receitas = receitas.Add(money.MustParse(t.Amount))
			case models.TransactionTypeDespesa:
				despesas = despesas.Add(money.MustParse(t.Amount))
			}
		}

		result = append(result, MonthlyRevenueExpense{
			Month:    monthAbbreviations[monthStart.Month()-1],
			Receitas: receitas.InexactFloat64(),
			Despesas: despesas.InexactFloat64(),
		})
	}
	return result
}

// GetExpensesByCategory groups despesa transactions by their resolved
// category name and returns each group's total and share of all expenses,
// sorted descending by amount. Groups tied on amount keep the order in
// which they were first seen in the date-descending scan. A missing
// category resolves to "Indefinido"; an empty history yields no groups,
// and percentages are 0 when the expense total is 0.
func (s *Store) GetExpensesByCategory() []CategoryExpense {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, t := range s.sortedTransactions() {
		if t.Type != models.TransactionTypeDespesa {
			continue
		}
		name := unresolvedCategory
		if c, ok := s.categories[t.CategoryID]; ok {
			name = c.Name
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(money.MustParse(t.Amount))
	}

	totalExpenses := decimal.Zero
	for _, amount := range totals {
		totalExpenses = totalExpenses.Add(amount)
	}

	result := make([]CategoryExpense, 0, len(order))
	for _, name := range order {
		amount := totals[name]
		percentage := 0.0
		if totalExpenses.IsPositive() {
			percentage = amount.Div(totalExpenses).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		result = append(result, CategoryExpense{
			Category:   name,
			Amount:     amount.InexactFloat64(),
			Percentage: percentage,
		})
	}

	// Stable so first-occurrence order survives equal amounts.
	sort.SliceStable(result, func(i, j int) bool { return result[i].Amount > result[j].Amount })
	return result
}
