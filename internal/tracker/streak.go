package tracker

import (
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/types"
)

// Streak returns the current budget streak without evaluating it.
func (t *Tracker) Streak() models.BudgetStreak {
	return t.store.Load().BudgetStreak
}

// CheckStreak runs the daily streak evaluation for the given day and
// returns the streak afterwards. The check runs at most once per
// calendar day: a repeated call for an already checked day changes
// nothing.
//
// When the month-to-date spend is at or below the income, the count
// goes up by one if the previous check was exactly yesterday, otherwise
// it restarts at one. When the spend exceeds the income, the count
// resets to zero.
func (t *Tracker) CheckStreak(today types.Date) (models.BudgetStreak, error) {
	var result models.BudgetStreak

	err := t.store.Update(func(data *models.AppData) error {
		if data.BudgetStreak.LastCheckedDate.Equal(today) {
			result = data.BudgetStreak
			return nil
		}

		spent := spentInMonth(data, today.Month())

		if spent.LessThanOrEqual(income(data)) {
			yesterday := today.AddDays(-1)
			if data.BudgetStreak.LastCheckedDate.Equal(yesterday) {
				data.BudgetStreak.Count++
			} else {
				data.BudgetStreak.Count = 1
			}
		} else {
			data.BudgetStreak.Count = 0
		}

		data.BudgetStreak.LastCheckedDate = today
		result = data.BudgetStreak
		return nil
	})

	return result, err
}
