// Package v1 implements the HTTP API of budget-book. The handlers are
// a thin boundary: they bind and validate input, call into the ledger,
// tracker and store, and translate errors into HTTP statuses.
package v1

import (
	"time"

	"github.com/arushshukla/budget-book/internal/categorize"
	"github.com/arushshukla/budget-book/internal/ledger"
	"github.com/arushshukla/budget-book/internal/storage"
	"github.com/arushshukla/budget-book/internal/tracker"
	"github.com/arushshukla/budget-book/internal/types"
)

// API bundles the dependencies of the v1 handlers.
type API struct {
	store   *storage.Store
	ledger  *ledger.Ledger
	tracker *tracker.Tracker

	// now is replaceable in tests.
	now func() time.Time
}

// New returns the API working on the given store.
func New(store *storage.Store) *API {
	return &API{
		store:   store,
		ledger:  ledger.New(store),
		tracker: tracker.New(store),
		now:     time.Now,
	}
}

// today returns the server's current calendar date.
func (api *API) today() types.Date {
	return types.DateOf(api.now())
}

// categorizer compiles a categorizer from the current keyword table.
// The table is user-extensible, so it is read fresh from the store.
func (api *API) categorizer() *categorize.Categorizer {
	return categorize.New(api.store.Load().AutoCategoryMap)
}
