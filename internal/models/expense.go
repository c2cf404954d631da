package models

import (
	"strings"

	"github.com/arushshukla/budget-book/internal/types"
	"github.com/shopspring/decimal"
)

// Expense is one user-recorded transaction. The ID is assigned at
// creation and never changes; the Date decides which month partition of
// the ledger owns the record.
type Expense struct {
	ID       string          `json:"id"`
	Item     string          `json:"item"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
	Date     types.Date      `json:"date"`
}

// Validate trims the item and checks all fields. It is called before an
// expense is written to the ledger.
func (e *Expense) Validate() error {
	e.Item = strings.TrimSpace(e.Item)
	if e.Item == "" {
		return ErrItemEmpty
	}

	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !e.Category.Valid() {
		return ErrCategoryInvalid
	}

	if e.Date.IsZero() {
		return ErrDateNotSet
	}

	return nil
}

// QuickExpense is a named preset for one-tap expense entry.
type QuickExpense struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
}

// Validate trims the name and checks all fields.
func (q *QuickExpense) Validate() error {
	q.Name = strings.TrimSpace(q.Name)
	if q.Name == "" {
		return ErrItemEmpty
	}

	if !q.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if !q.Category.Valid() {
		return ErrCategoryInvalid
	}

	return nil
}
