package v1

import (
	"net/http"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/gin-gonic/gin"
)

// @Summary		Reset current month
// @Description	Deletes all expenses of the current month, restores the default budgets and zeroes the streak. Archived months and settings stay untouched
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			confirm	query		string	false	"Confirmation. Must have the value 'yes-please-reset-this-month'"
// @Router			/v1 [delete]
func (api *API) ResetCurrentMonth(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-reset-this-month" {
		httputil.NewError(c, http.StatusBadRequest, errCleanupConfirmation)
		return
	}

	err = api.store.Update(func(data *models.AppData) error {
		delete(data.AllExpenses, api.today().Month())
		data.CategoryBudgets = models.DefaultBudgets()
		data.BudgetStreak = models.BudgetStreak{}
		return nil
	})
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	c.Status(http.StatusNoContent)
}
