// Package tracker implements the derived-state rules of the app: the
// per-category budgets, the daily budget streak, the monthly rollover
// into the archive, and the savings goal.
package tracker

import (
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/storage"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/shopspring/decimal"
)

// Tracker performs budget, streak, rollover and goal operations against
// the store.
type Tracker struct {
	store *storage.Store
}

// New returns a tracker working on the given store.
func New(store *storage.Store) *Tracker {
	return &Tracker{store: store}
}

// income returns the pocket money amount, treating "not set" as zero.
func income(data *models.AppData) decimal.Decimal {
	if data.PocketMoneyInfo.Amount == nil {
		return decimal.Zero
	}

	return *data.PocketMoneyInfo.Amount
}

// spentInMonth sums all expenses in a month partition. Savings
// contributions count as spend: money set aside is not available
// anymore.
func spentInMonth(data *models.AppData, month types.Month) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range data.AllExpenses[month] {
		sum = sum.Add(e.Amount)
	}

	return sum
}

// spentByCategory sums the expenses of one category in a month.
func spentByCategory(data *models.AppData, month types.Month, category models.Category) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range data.AllExpenses[month] {
		if e.Category == category {
			sum = sum.Add(e.Amount)
		}
	}

	return sum
}
