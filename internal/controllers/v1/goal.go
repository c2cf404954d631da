package v1

import (
	"net/http"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/tracker"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterGoalRoutes registers the routes for the savings goal with the
// RouterGroup that is passed.
func (api *API) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPut)
		r.GET("", api.GetGoal)
		r.PUT("", api.SetGoal)
	}
	{
		r.OPTIONS("/savings", httputil.OptionsPost)
		r.POST("/savings", api.AddToSavings)
	}
}

// GoalEditable is the request body for setting a savings goal.
type GoalEditable struct {
	Name   string          `json:"name" example:"New headphones"` // Name of the goal
	Amount decimal.Decimal `json:"amount" example:"750"`          // Target amount
}

// GoalResponse wraps the active savings goal.
type GoalResponse struct {
	Data models.SavingsGoal `json:"data"`
}

// SavingsResponse wraps the outcome of a savings contribution.
type SavingsResponse struct {
	Data tracker.SavingsResult `json:"data"`
}

// SavingsCreate is the request body for a savings contribution.
type SavingsCreate struct {
	Amount decimal.Decimal `json:"amount" example:"50"` // Amount to set aside
}

// @Summary		Get savings goal
// @Description	Returns the active savings goal
// @Tags			Goal
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		404	{object}	httputil.HTTPError
// @Router			/v1/goal [get]
func (api *API) GetGoal(c *gin.Context) {
	goal, err := api.tracker.Goal()
	if err != nil {
		httputil.NewError(c, http.StatusNotFound, err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goal})
}

// @Summary		Set savings goal
// @Description	Replaces any existing goal with a fresh one: nothing saved yet, not completed
// @Tags			Goal
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goal [put]
func (api *API) SetGoal(c *gin.Context) {
	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	goal, err := api.tracker.SetGoal(editable.Name, editable.Amount)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, GoalResponse{Data: goal})
}

// @Summary		Add to savings
// @Description	Records a savings contribution: raises the goal's saved amount and creates a mirror expense under the Savings category dated today. Rejected when the contribution exceeds the remaining balance of the month
// @Tags			Goal
// @Produce		json
// @Success		201				{object}	SavingsResponse
// @Failure		400				{object}	httputil.HTTPError
// @Param			contribution	body		SavingsCreate	true	"Contribution"
// @Router			/v1/goal/savings [post]
func (api *API) AddToSavings(c *gin.Context) {
	var create SavingsCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	result, err := api.tracker.AddToSavings(create.Amount, api.today())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, SavingsResponse{Data: result})
}
