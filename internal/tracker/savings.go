package tracker

import (
	"strings"

	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SavingsResult is the outcome of a savings contribution. JustCompleted
// is true only for the call that pushed the saved amount across the
// target, so the client can show the "goal achieved" celebration
// exactly once.
type SavingsResult struct {
	Goal          models.SavingsGoal `json:"goal"`
	Expense       models.Expense     `json:"expense"`
	JustCompleted bool               `json:"justCompleted"`
}

// Goal returns the active savings goal.
func (t *Tracker) Goal() (models.SavingsGoal, error) {
	data := t.store.Load()
	if data.SavingsGoal == nil {
		return models.SavingsGoal{}, models.ErrNoActiveGoal
	}

	return *data.SavingsGoal, nil
}

// SetGoal replaces any existing goal with a fresh one: nothing saved
// yet, not completed.
func (t *Tracker) SetGoal(name string, amount decimal.Decimal) (models.SavingsGoal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SavingsGoal{}, models.ErrItemEmpty
	}

	if !amount.IsPositive() {
		return models.SavingsGoal{}, models.ErrAmountNotPositive
	}

	goal := models.SavingsGoal{Name: name, Amount: amount}

	err := t.store.Update(func(data *models.AppData) error {
		data.SavingsGoal = &goal
		return nil
	})
	if err != nil {
		return models.SavingsGoal{}, err
	}

	return goal, nil
}

// AddToSavings records a contribution to the active goal. The amount
// must not exceed the balance still available this month (income minus
// everything spent, prior contributions included); otherwise nothing is
// recorded and ErrInsufficientBalance is returned.
//
// A successful contribution does two things in one write: it raises the
// goal's saved amount, and it creates a mirror expense under the
// Savings category dated today, so that every balance and report view
// treats money set aside like any other outflow.
func (t *Tracker) AddToSavings(amount decimal.Decimal, today types.Date) (SavingsResult, error) {
	if !amount.IsPositive() {
		return SavingsResult{}, models.ErrAmountNotPositive
	}

	var result SavingsResult

	err := t.store.Update(func(data *models.AppData) error {
		if data.SavingsGoal == nil {
			return models.ErrNoActiveGoal
		}

		available := income(data).Sub(spentInMonth(data, today.Month()))
		if amount.GreaterThan(available) {
			return models.ErrInsufficientBalance
		}

		data.SavingsGoal.SavedAmount = data.SavingsGoal.SavedAmount.Add(amount)

		expense := models.Expense{
			ID:       uuid.NewString(),
			Item:     "Saved for " + data.SavingsGoal.Name,
			Amount:   amount,
			Category: models.CategorySavings,
			Date:     today,
		}
		month := today.Month()
		data.AllExpenses[month] = append(data.AllExpenses[month], expense)

		// The completion edge fires exactly once; later contributions
		// that keep the goal above its target do not re-fire it.
		justCompleted := false
		if !data.SavingsGoal.Completed && data.SavingsGoal.SavedAmount.GreaterThanOrEqual(data.SavingsGoal.Amount) {
			data.SavingsGoal.Completed = true
			justCompleted = true
		}

		result = SavingsResult{
			Goal:          *data.SavingsGoal,
			Expense:       expense,
			JustCompleted: justCompleted,
		}
		return nil
	})
	if err != nil {
		return SavingsResult{}, err
	}

	return result, nil
}
