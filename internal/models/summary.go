package models

import (
	"github.com/google/uuid"
	"github.com/household-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CategorySummary is the spend-vs-budget calculation for one budget in
// one month.
type CategorySummary struct {
	BudgetID   uuid.UUID       `json:"budgetId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the budget
	Category   string          `json:"category" example:"Food"`                                 // The budgeted category
	Budget     decimal.Decimal `json:"budget" example:"200"`                                    // The monthly cap
	Spent      decimal.Decimal `json:"spent" example:"80"`                                      // Sum of all matching expenses in the month
	Percentage int64           `json:"percentage" example:"40"`                                 // Consumed part of the cap, clamped to [0, 100]
}

// MonthlySummary recomputes the spend for every budget over the given
// month. Matching is by exact category string, expenses are included
// when their date falls into [month start, next month start).
func MonthlySummary(month types.Month) ([]CategorySummary, error) {
	var budgets []Budget
	err := DB.Order("category ASC").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]CategorySummary, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := ExpensesSum(budget.Category, month.Start(), month.End())
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, CategorySummary{
			BudgetID:   budget.ID,
			Category:   budget.Category,
			Budget:     budget.Amount,
			Spent:      spent,
			Percentage: percentage(spent, budget.Amount),
		})
	}

	return summaries, nil
}

// percentage returns spent/amount as a rounded percentage clamped to
// [0, 100]. A cap of zero never divides, the percentage is 0 then.
func percentage(spent, amount decimal.Decimal) int64 {
	if !amount.IsPositive() {
		return 0
	}

	pct := spent.Div(amount).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}

	return pct
}
