package tracker

import (
	"strings"
	"time"

	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/types"
	"golang.org/x/exp/slices"
)

// Rollover archives the previously seen month when the calendar has
// moved on and advances the last-seen marker. It runs on every app
// launch and is idempotent within a month: once the marker matches the
// current month, repeated calls change nothing.
//
// A prior month with at least one expense is archived even when no
// income amount is known; the income is then recorded as zero. Months
// without expenses are skipped, they have nothing worth freezing.
// Archiving replaces an existing entry for the same month key, and the
// archive stays sorted most recent first.
func (t *Tracker) Rollover(now time.Time) (*models.ArchivedMonth, error) {
	var archived *models.ArchivedMonth

	err := t.store.Update(func(data *models.AppData) error {
		current := types.MonthOf(now)

		if !data.LastSeenMonth.IsZero() && !data.LastSeenMonth.Equal(current) {
			expenses := data.AllExpenses[data.LastSeenMonth]
			if len(expenses) > 0 {
				snapshot := models.ArchivedMonth{
					Month:           data.LastSeenMonth,
					PocketMoney:     income(data),
					Expenses:        expenses,
					CategoryBudgets: data.CategoryBudgets,
				}

				upsertArchive(data, snapshot)
				archived = &snapshot
			}
		}

		data.LastSeenMonth = current
		return nil
	})

	return archived, err
}

// Archive returns the archived months, most recent first.
func (t *Tracker) Archive() []models.ArchivedMonth {
	return t.store.Load().ArchivedMonths
}

// ArchivedMonth returns the archive entry for one month.
func (t *Tracker) ArchivedMonth(month types.Month) (models.ArchivedMonth, error) {
	for _, archive := range t.store.Load().ArchivedMonths {
		if archive.Month.Equal(month) {
			return archive, nil
		}
	}

	return models.ArchivedMonth{}, models.ErrResourceNotFound
}

// upsertArchive replaces the entry with the same month key or appends a
// new one, then restores the descending order.
func upsertArchive(data *models.AppData, snapshot models.ArchivedMonth) {
	replaced := false
	for i, archive := range data.ArchivedMonths {
		if archive.Month.Equal(snapshot.Month) {
			data.ArchivedMonths[i] = snapshot
			replaced = true
			break
		}
	}

	if !replaced {
		data.ArchivedMonths = append(data.ArchivedMonths, snapshot)
	}

	slices.SortFunc(data.ArchivedMonths, func(a, b models.ArchivedMonth) int {
		return strings.Compare(b.Month.String(), a.Month.String())
	})
}
