package v1

import (
	"errors"
	"net/http"

	"github.com/arushshukla/budget-book/internal/models"
)

// status returns the appropriate HTTP status for a domain error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthInvalid        = errors.New("the month must be given in the YYYY-MM format")
	errDateInvalid         = errors.New("the date must be given in the YYYY-MM-DD format")
	errCleanupConfirmation = errors.New("the confirmation for the reset API call was incorrect")
	errQuickExpenseUnknown = errors.New("there is no quick expense preset with this id")
)
