package v1

import (
	"net/http"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterStreakRoutes registers the routes for the budget streak with
// the RouterGroup that is passed.
func (api *API) RegisterStreakRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", api.GetStreak)
	}
	{
		r.OPTIONS("/check", httputil.OptionsPost)
		r.POST("/check", api.CheckStreak)
	}
}

// StreakResponse wraps the budget streak.
type StreakResponse struct {
	Data models.BudgetStreak `json:"data"`
}

// @Summary		Get streak
// @Description	Returns the budget streak without evaluating it
// @Tags			Streak
// @Produce		json
// @Success		200	{object}	StreakResponse
// @Router			/v1/streak [get]
func (api *API) GetStreak(c *gin.Context) {
	c.JSON(http.StatusOK, StreakResponse{Data: api.tracker.Streak()})
}

// @Summary		Check streak
// @Description	Runs the daily streak evaluation for today. Idempotent within a calendar day: the client calls this on every launch
// @Tags			Streak
// @Produce		json
// @Success		200	{object}	StreakResponse
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/streak/check [post]
func (api *API) CheckStreak(c *gin.Context) {
	streak, err := api.tracker.CheckStreak(api.today())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, StreakResponse{Data: streak})
}
