// Package storage persists the AppData aggregate as a single serialized
// record in a local sqlite database.
//
// Every read returns a fully populated aggregate: missing or corrupt
// data falls back to defaults instead of surfacing an error, so the
// application can always start. Writes replace the whole record
// (last-write-wins).
package storage

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// recordID is the primary key of the one row the store uses.
const recordID = 1

// record is the database row holding the serialized aggregate.
type record struct {
	ID        uint `gorm:"primarykey"`
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store owns the database handle and serializes all read-modify-write
// cycles. Handlers run concurrently, so the single-writer guarantee the
// aggregate needs lives here.
type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// Connect opens the sqlite database at the given path and migrates the
// record table.
func Connect(path string) (*Store, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(path), config)
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(record{})
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Load reads the stored aggregate. If no record exists or the stored
// data cannot be parsed, a default aggregate is returned.
func (s *Store) Load() models.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Save serializes the aggregate and overwrites the stored record.
func (s *Store) Save(data models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(data)
}

// Update runs one read-modify-write cycle under the store lock. When fn
// returns an error nothing is written and the error is passed through.
func (s *Store) Update(fn func(*models.AppData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.load()
	if err := fn(&data); err != nil {
		return err
	}

	return s.save(data)
}

// Export returns the serialized aggregate for a backup download.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return json.Marshal(s.load())
}

// Import validates a backup and wholesale-replaces the stored
// aggregate. A backup must contain at least the pocketMoneyInfo and
// allExpenses fields; anything else is rejected without a write.
func (s *Store) Import(raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.ErrBackupUnparseable
	}

	if _, ok := fields["pocketMoneyInfo"]; !ok {
		return models.ErrBackupInvalid
	}
	if _, ok := fields["allExpenses"]; !ok {
		return models.ErrBackupInvalid
	}

	data, err := merge(fields)
	if err != nil {
		return models.ErrBackupUnparseable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(data)
}

func (s *Store) load() models.AppData {
	var rec record

	err := s.db.First(&rec, recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultAppData()
	}
	if err != nil {
		log.Error().Err(err).Msg("app data could not be read, falling back to defaults")
		return models.DefaultAppData()
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rec.Data, &fields); err != nil {
		log.Error().Err(err).Msg("app data could not be parsed, falling back to defaults")
		return models.DefaultAppData()
	}

	data, err := merge(fields)
	if err != nil {
		log.Error().Err(err).Msg("app data could not be parsed, falling back to defaults")
		return models.DefaultAppData()
	}

	return data
}

func (s *Store) save(data models.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return s.db.Save(&record{ID: recordID, Data: raw}).Error
}

// merge layers stored values over a default aggregate, field by field.
//
// Most fields replace their default when present. PocketMoneyInfo,
// BudgetStreak and AutoCategoryMap merge into the default instead, so
// that keys introduced after the record was written are not lost when
// an old record is loaded.
func merge(fields map[string]json.RawMessage) (models.AppData, error) {
	data := models.DefaultAppData()

	// Merged fields: unmarshaling onto the default value keeps default
	// struct fields and map keys that the stored record does not have.
	mergeInto := map[string]any{
		"pocketMoneyInfo": &data.PocketMoneyInfo,
		"budgetStreak":    &data.BudgetStreak,
		"autoCategoryMap": &data.AutoCategoryMap,
	}

	// Replaced fields: the stored value wins wholesale.
	replace := map[string]any{
		"allExpenses":              &data.AllExpenses,
		"archivedMonths":           &data.ArchivedMonths,
		"theme":                    &data.Theme,
		"lastSeenMonth":            &data.LastSeenMonth,
		"passcode":                 &data.Passcode,
		"onboardingComplete":       &data.OnboardingComplete,
		"quickExpenses":            &data.QuickExpenses,
		"quickExpenseButtonCount":  &data.QuickExpenseButtonCount,
		"savingsGoal":              &data.SavingsGoal,
		"hasShownSavingsEducation": &data.HasShownSavingsEducation,
	}

	for key, target := range mergeInto {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			continue
		}

		if err := json.Unmarshal(raw, target); err != nil {
			return models.AppData{}, err
		}
	}

	for key, target := range replace {
		raw, ok := fields[key]
		if !ok || string(raw) == "null" {
			continue
		}

		if err := json.Unmarshal(raw, target); err != nil {
			return models.AppData{}, err
		}
	}

	// categoryBudgets replaces as well, but into a fresh map so the
	// default limits do not leak into a record where the user removed
	// them.
	if raw, ok := fields["categoryBudgets"]; ok && string(raw) != "null" {
		budgets := models.CategoryBudgets{}
		if err := json.Unmarshal(raw, &budgets); err != nil {
			return models.AppData{}, err
		}
		data.CategoryBudgets = budgets
	}

	if data.AllExpenses == nil {
		data.AllExpenses = map[types.Month][]models.Expense{}
	}

	return data, nil
}
