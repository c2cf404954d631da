package v1

import (
	"net/http"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/tracker"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterBudgetRoutes registers the routes for budgets with the
// RouterGroup that is passed.
func (api *API) RegisterBudgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPut)
		r.GET("", api.GetBudgets)
		r.PUT("", api.UpdateBudgets)
	}
	{
		r.OPTIONS("/status", httputil.OptionsGet)
		r.GET("/status", api.GetBudgetStatus)
	}
}

// BudgetsResponse wraps the per-category limits.
type BudgetsResponse struct {
	Data models.CategoryBudgets `json:"data"`
}

// BudgetStatusResponse wraps the derived budget status of one month.
type BudgetStatusResponse struct {
	Data []tracker.CategoryStatus `json:"data"`
}

// @Summary		Get budgets
// @Description	Returns the per-category spending limits
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetsResponse
// @Router			/v1/budgets [get]
func (api *API) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, BudgetsResponse{Data: api.tracker.Budgets()})
}

// @Summary		Update budgets
// @Description	Replaces the whole budget map. A missing or zero limit means "no limit"
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetsResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			budgets	body		models.CategoryBudgets	true	"Budgets"
// @Router			/v1/budgets [put]
func (api *API) UpdateBudgets(c *gin.Context) {
	var budgets models.CategoryBudgets
	if err := httputil.BindData(c, &budgets); err != nil {
		return
	}

	if err := api.tracker.SaveBudgets(budgets); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, BudgetsResponse{Data: budgets})
}

// @Summary		Get budget status
// @Description	Returns spent versus limit for every category with a limit set. Defaults to the current month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetStatusResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Month to report on (YYYY-MM)"
// @Router			/v1/budgets/status [get]
func (api *API) GetBudgetStatus(c *gin.Context) {
	month := api.today().Month()

	if raw, ok := c.GetQuery("month"); ok {
		parsed, err := types.ParseMonth(raw)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, errMonthInvalid)
			return
		}
		month = parsed
	}

	c.JSON(http.StatusOK, BudgetStatusResponse{Data: api.tracker.BudgetStatus(month)})
}
