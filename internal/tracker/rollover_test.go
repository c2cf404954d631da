package tracker_test

import (
	"time"

	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestRolloverArchivesPreviousMonth() {
	t := suite.T()

	suite.setIncome(500)

	_, err := suite.ledger.Add("Chai", decimal.NewFromInt(100), models.CategoryFood, types.NewDate(2024, 5, 10))
	require.Nil(t, err)

	err = suite.store.Update(func(data *models.AppData) error {
		data.LastSeenMonth = types.NewMonth(2024, 5)
		return nil
	})
	require.Nil(t, err)

	archived, err := suite.tracker.Rollover(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.Nil(t, err)

	require.NotNil(t, archived)
	assert.True(t, types.NewMonth(2024, 5).Equal(archived.Month))
	assert.True(t, decimal.NewFromInt(500).Equal(archived.PocketMoney))
	require.Len(t, archived.Expenses, 1)
	assert.Equal(t, "Chai", archived.Expenses[0].Item)

	data := suite.store.Load()
	assert.True(t, types.NewMonth(2024, 6).Equal(data.LastSeenMonth))
	require.Len(t, data.ArchivedMonths, 1)
}

func (suite *TestSuiteStandard) TestRolloverIdempotentWithinMonth() {
	t := suite.T()

	suite.setIncome(500)

	_, err := suite.ledger.Add("Chai", decimal.NewFromInt(100), models.CategoryFood, types.NewDate(2024, 5, 10))
	require.Nil(t, err)

	err = suite.store.Update(func(data *models.AppData) error {
		data.LastSeenMonth = types.NewMonth(2024, 5)
		return nil
	})
	require.Nil(t, err)

	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	archived, err := suite.tracker.Rollover(now)
	require.Nil(t, err)
	require.NotNil(t, archived)

	// The marker now matches the current month, nothing more happens
	archived, err = suite.tracker.Rollover(now)
	require.Nil(t, err)
	assert.Nil(t, archived)

	assert.Len(t, suite.tracker.Archive(), 1)
}

func (suite *TestSuiteStandard) TestRolloverFirstLaunch() {
	t := suite.T()

	// No last-seen month yet: nothing to archive, the marker is set
	archived, err := suite.tracker.Rollover(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.Nil(t, err)

	assert.Nil(t, archived)
	assert.True(t, types.NewMonth(2024, 6).Equal(suite.store.Load().LastSeenMonth))
}

func (suite *TestSuiteStandard) TestRolloverSkipsEmptyMonth() {
	t := suite.T()

	err := suite.store.Update(func(data *models.AppData) error {
		data.LastSeenMonth = types.NewMonth(2024, 5)
		return nil
	})
	require.Nil(t, err)

	archived, err := suite.tracker.Rollover(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.Nil(t, err)

	assert.Nil(t, archived)
	assert.Empty(t, suite.tracker.Archive())
	assert.True(t, types.NewMonth(2024, 6).Equal(suite.store.Load().LastSeenMonth))
}

// A month with expenses but no income amount set is archived with zero
// pocket money rather than skipped.
func (suite *TestSuiteStandard) TestRolloverWithoutIncome() {
	t := suite.T()

	_, err := suite.ledger.Add("Chai", decimal.NewFromInt(100), models.CategoryFood, types.NewDate(2024, 5, 10))
	require.Nil(t, err)

	err = suite.store.Update(func(data *models.AppData) error {
		data.LastSeenMonth = types.NewMonth(2024, 5)
		return nil
	})
	require.Nil(t, err)

	archived, err := suite.tracker.Rollover(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.Nil(t, err)

	require.NotNil(t, archived)
	assert.True(t, archived.PocketMoney.IsZero())
}

func (suite *TestSuiteStandard) TestRolloverReplacesSameMonth() {
	t := suite.T()

	suite.setIncome(500)

	_, err := suite.ledger.Add("Chai", decimal.NewFromInt(100), models.CategoryFood, types.NewDate(2024, 5, 10))
	require.Nil(t, err)

	err = suite.store.Update(func(data *models.AppData) error {
		data.LastSeenMonth = types.NewMonth(2024, 5)
		// A stale entry for the same month, e.g. from a restored backup
		data.ArchivedMonths = []models.ArchivedMonth{{
			Month:       types.NewMonth(2024, 5),
			PocketMoney: decimal.NewFromInt(999),
		}}
		return nil
	})
	require.Nil(t, err)

	_, err = suite.tracker.Rollover(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.Nil(t, err)

	archive := suite.tracker.Archive()
	require.Len(t, archive, 1)
	assert.True(t, decimal.NewFromInt(500).Equal(archive[0].PocketMoney))
	assert.Len(t, archive[0].Expenses, 1)
}

func (suite *TestSuiteStandard) TestArchiveSortedMostRecentFirst() {
	t := suite.T()

	err := suite.store.Update(func(data *models.AppData) error {
		data.ArchivedMonths = []models.ArchivedMonth{
			{Month: types.NewMonth(2024, 3)},
		}
		data.LastSeenMonth = types.NewMonth(2024, 5)
		return nil
	})
	require.Nil(t, err)

	_, err = suite.ledger.Add("Chai", decimal.NewFromInt(100), models.CategoryFood, types.NewDate(2024, 5, 10))
	require.Nil(t, err)

	_, err = suite.tracker.Rollover(time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.Nil(t, err)

	archive := suite.tracker.Archive()
	require.Len(t, archive, 2)
	assert.Equal(t, "2024-05", archive[0].Month.String())
	assert.Equal(t, "2024-03", archive[1].Month.String())
}

func (suite *TestSuiteStandard) TestArchivedMonth() {
	t := suite.T()

	err := suite.store.Update(func(data *models.AppData) error {
		data.ArchivedMonths = []models.ArchivedMonth{
			{Month: types.NewMonth(2024, 3), PocketMoney: decimal.NewFromInt(400)},
		}
		return nil
	})
	require.Nil(t, err)

	archived, err := suite.tracker.ArchivedMonth(types.NewMonth(2024, 3))
	require.Nil(t, err)
	assert.True(t, decimal.NewFromInt(400).Equal(archived.PocketMoney))

	_, err = suite.tracker.ArchivedMonth(types.NewMonth(2020, 1))
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}
