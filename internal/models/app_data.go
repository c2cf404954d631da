package models

import (
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/shopspring/decimal"
)

// PocketMoneyInfo is the recurring income baseline. Amount is nil until
// the user completes setup; Payday is a day of the month.
type PocketMoneyInfo struct {
	Amount *decimal.Decimal `json:"amount"`
	Payday int              `json:"payday"`
	Source IncomeSource     `json:"source"`
}

// Validate checks the income info before it is stored.
func (p PocketMoneyInfo) Validate() error {
	if p.Amount != nil && !p.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if p.Payday < 1 || p.Payday > 31 {
		return ErrPaydayInvalid
	}

	if !p.Source.Valid() {
		return ErrIncomeSourceInvalid
	}

	return nil
}

// CategoryBudgets maps a category to its monthly spending limit. A
// category that is absent or has a non-positive value has no limit.
type CategoryBudgets map[Category]decimal.Decimal

// Limit returns the limit for a category and whether one is set.
func (b CategoryBudgets) Limit(category Category) (decimal.Decimal, bool) {
	limit, ok := b[category]
	if !ok || !limit.IsPositive() {
		return decimal.Zero, false
	}

	return limit, true
}

// BudgetStreak counts consecutive calendar days on which the
// month-to-date spend stayed at or below the income. LastCheckedDate
// gates the daily check: it is never evaluated twice for the same day.
type BudgetStreak struct {
	Count           uint       `json:"count"`
	LastCheckedDate types.Date `json:"lastCheckedDate"`
}

// SavingsGoal is the single active goal. Completed flips to true
// exactly once, when SavedAmount reaches Amount.
type SavingsGoal struct {
	Name        string          `json:"name"`
	Amount      decimal.Decimal `json:"amount"`
	SavedAmount decimal.Decimal `json:"savedAmount"`
	Completed   bool            `json:"completed"`
}

// ArchivedMonth is a frozen snapshot of a completed month: its ledger,
// the income in effect, and optionally the budgets at the time.
type ArchivedMonth struct {
	Month           types.Month     `json:"month"`
	PocketMoney     decimal.Decimal `json:"pocketMoney"`
	Expenses        []Expense       `json:"expenses"`
	CategoryBudgets CategoryBudgets `json:"categoryBudgets,omitempty"`
}

// AppData is the aggregate root. It is persisted as a single serialized
// record; every mutation reads the whole aggregate, changes one field
// and writes the whole aggregate back.
type AppData struct {
	PocketMoneyInfo          PocketMoneyInfo           `json:"pocketMoneyInfo"`
	AllExpenses              map[types.Month][]Expense `json:"allExpenses"`
	ArchivedMonths           []ArchivedMonth           `json:"archivedMonths"`
	Theme                    Theme                     `json:"theme"`
	LastSeenMonth            types.Month               `json:"lastSeenMonth"`
	CategoryBudgets          CategoryBudgets           `json:"categoryBudgets"`
	Passcode                 string                    `json:"passcode"`
	OnboardingComplete       bool                      `json:"onboardingComplete"`
	QuickExpenses            []QuickExpense            `json:"quickExpenses"`
	QuickExpenseButtonCount  int                       `json:"quickExpenseButtonCount"`
	BudgetStreak             BudgetStreak              `json:"budgetStreak"`
	SavingsGoal              *SavingsGoal              `json:"savingsGoal"`
	HasShownSavingsEducation bool                      `json:"hasShownSavingsEducation"`
	AutoCategoryMap          map[string]Category       `json:"autoCategoryMap"`
}

// DefaultBudgets returns the budgets a fresh install starts with.
func DefaultBudgets() CategoryBudgets {
	return CategoryBudgets{
		CategoryFood:          decimal.NewFromInt(400),
		CategoryRecharge:      decimal.NewFromInt(100),
		CategoryEntertainment: decimal.NewFromInt(200),
	}
}

// DefaultQuickExpenses returns the preset shortcuts a fresh install
// starts with.
func DefaultQuickExpenses() []QuickExpense {
	return []QuickExpense{
		{ID: 1, Name: "Chai", Amount: decimal.NewFromInt(20), Category: CategoryFood},
		{ID: 2, Name: "Recharge", Amount: decimal.NewFromInt(50), Category: CategoryRecharge},
		{ID: 3, Name: "Pen", Amount: decimal.NewFromInt(30), Category: CategoryStationery},
		{ID: 4, Name: "Movie", Amount: decimal.NewFromInt(150), Category: CategoryEntertainment},
		{ID: 5, Name: "Bus Fare", Amount: decimal.NewFromInt(15), Category: CategoryTransport},
		{ID: 6, Name: "Snacks", Amount: decimal.NewFromInt(40), Category: CategoryFood},
	}
}

// DefaultAppData returns a fully populated default aggregate.
func DefaultAppData() AppData {
	return AppData{
		PocketMoneyInfo: PocketMoneyInfo{
			Amount: nil,
			Payday: 1,
			Source: IncomeSourceMonthly,
		},
		AllExpenses:             map[types.Month][]Expense{},
		ArchivedMonths:          []ArchivedMonth{},
		Theme:                   ThemeSystem,
		CategoryBudgets:         DefaultBudgets(),
		QuickExpenses:           DefaultQuickExpenses(),
		QuickExpenseButtonCount: 3,
		BudgetStreak:            BudgetStreak{},
		AutoCategoryMap:         DefaultAutoCategoryMap(),
	}
}
