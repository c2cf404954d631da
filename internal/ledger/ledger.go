// Package ledger implements the expense CRUD operations on top of the
// store. Expenses live in month partitions keyed by their date; every
// operation keeps the partition invariant intact: an expense is always
// in the partition its date belongs to.
package ledger

import (
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/storage"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger performs expense operations against the store.
type Ledger struct {
	store *storage.Store
}

// New returns a ledger working on the given store.
func New(store *storage.Store) *Ledger {
	return &Ledger{store: store}
}

// Add validates and appends a new expense to the partition of its date
// and returns it with the assigned ID.
func (l *Ledger) Add(item string, amount decimal.Decimal, category models.Category, date types.Date) (models.Expense, error) {
	expense := models.Expense{
		ID:       uuid.NewString(),
		Item:     item,
		Amount:   amount,
		Category: category,
		Date:     date,
	}

	if err := expense.Validate(); err != nil {
		return models.Expense{}, err
	}

	err := l.store.Update(func(data *models.AppData) error {
		month := expense.Date.Month()
		data.AllExpenses[month] = append(data.AllExpenses[month], expense)
		return nil
	})
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

// Update replaces the stored expense with the same ID. The expense is
// looked up across all partitions: when its date moved to another
// month, the record moves to the partition of the new date. An unknown
// ID is a no-op.
func (l *Ledger) Update(expense models.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	return l.store.Update(func(data *models.AppData) error {
		for month, expenses := range data.AllExpenses {
			for i, e := range expenses {
				if e.ID != expense.ID {
					continue
				}

				target := expense.Date.Month()
				if month.Equal(target) {
					expenses[i] = expense
					return nil
				}

				// The date moved to another month, so the record
				// moves to that partition.
				data.AllExpenses[month] = append(expenses[:i], expenses[i+1:]...)
				if len(data.AllExpenses[month]) == 0 {
					delete(data.AllExpenses, month)
				}
				data.AllExpenses[target] = append(data.AllExpenses[target], expense)
				return nil
			}
		}

		return nil
	})
}

// Delete removes the expense with the given ID. An unknown ID is a
// no-op.
func (l *Ledger) Delete(id string) error {
	return l.store.Update(func(data *models.AppData) error {
		for month, expenses := range data.AllExpenses {
			for i, e := range expenses {
				if e.ID != id {
					continue
				}

				data.AllExpenses[month] = append(expenses[:i], expenses[i+1:]...)
				if len(data.AllExpenses[month]) == 0 {
					delete(data.AllExpenses, month)
				}
				return nil
			}
		}

		return nil
	})
}

// ForMonth returns a copy of the partition for the given month. The
// copy keeps callers from corrupting the store through the returned
// slice.
func (l *Ledger) ForMonth(month types.Month) []models.Expense {
	data := l.store.Load()

	expenses := make([]models.Expense, len(data.AllExpenses[month]))
	copy(expenses, data.AllExpenses[month])

	return expenses
}

// All returns every expense: the live partitions plus all archived
// months. The combined order is unspecified, callers sort as needed.
func (l *Ledger) All() []models.Expense {
	data := l.store.Load()

	var expenses []models.Expense
	for _, partition := range data.AllExpenses {
		expenses = append(expenses, partition...)
	}
	for _, archive := range data.ArchivedMonths {
		expenses = append(expenses, archive.Expenses...)
	}

	return expenses
}

// Find returns the expense with the given ID from any live partition.
func (l *Ledger) Find(id string) (models.Expense, error) {
	data := l.store.Load()

	for _, partition := range data.AllExpenses {
		for _, e := range partition {
			if e.ID == id {
				return e, nil
			}
		}
	}

	return models.Expense{}, models.ErrResourceNotFound
}
