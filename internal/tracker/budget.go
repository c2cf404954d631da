package tracker

import (
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/shopspring/decimal"
)

// CategoryStatus is the derived budget view for one category with a
// limit set.
type CategoryStatus struct {
	Category models.Category `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Over     bool            `json:"over"`
}

// Budgets returns the current per-category limits.
func (t *Tracker) Budgets() models.CategoryBudgets {
	return t.store.Load().CategoryBudgets
}

// SaveBudgets replaces the whole budget map. A zero or absent limit
// means "no limit"; negative limits are rejected.
func (t *Tracker) SaveBudgets(budgets models.CategoryBudgets) error {
	for category, limit := range budgets {
		if !category.Valid() {
			return models.ErrCategoryInvalid
		}

		if limit.IsNegative() {
			return models.ErrAmountNotPositive
		}
	}

	return t.store.Update(func(data *models.AppData) error {
		data.CategoryBudgets = budgets
		return nil
	})
}

// BudgetStatus reports, for every category with a positive limit, how
// much of it is spent in the given month. The over flag is the current
// status; edge-triggering a "newly over" event out of consecutive
// status reads is up to the client.
func (t *Tracker) BudgetStatus(month types.Month) []CategoryStatus {
	data := t.store.Load()

	statuses := make([]CategoryStatus, 0)
	for _, category := range models.Categories() {
		limit, ok := data.CategoryBudgets.Limit(category)
		if !ok {
			continue
		}

		spent := spentByCategory(&data, month, category)
		statuses = append(statuses, CategoryStatus{
			Category: category,
			Limit:    limit,
			Spent:    spent,
			Over:     spent.GreaterThan(limit),
		})
	}

	return statuses
}
