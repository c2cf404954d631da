package v1

import (
	"net/http"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterArchiveRoutes registers the routes for archived months with
// the RouterGroup that is passed.
func (api *API) RegisterArchiveRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", api.GetArchive)
	}
	{
		r.OPTIONS("/:month", httputil.OptionsGet)
		r.GET("/:month", api.GetArchivedMonth)
	}
}

// ArchiveListResponse wraps the archive, most recent month first.
type ArchiveListResponse struct {
	Data []models.ArchivedMonth `json:"data"`
}

// ArchivedMonthResponse wraps one archived month.
type ArchivedMonthResponse struct {
	Data models.ArchivedMonth `json:"data"`
}

// RolloverResponse reports the outcome of a rollover check. Archived is
// nil when no month needed archiving.
type RolloverResponse struct {
	Archived      *models.ArchivedMonth `json:"archived"`
	LastSeenMonth types.Month           `json:"lastSeenMonth"`
}

// @Summary		Get archive
// @Description	Returns all archived months, most recent first
// @Tags			Archive
// @Produce		json
// @Success		200	{object}	ArchiveListResponse
// @Router			/v1/archive [get]
func (api *API) GetArchive(c *gin.Context) {
	c.JSON(http.StatusOK, ArchiveListResponse{Data: api.tracker.Archive()})
}

// @Summary		Get archived month
// @Description	Returns the archived snapshot of one month
// @Tags			Archive
// @Produce		json
// @Success		200		{object}	ArchivedMonthResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			month	path		string	true	"Month (YYYY-MM)"
// @Router			/v1/archive/{month} [get]
func (api *API) GetArchivedMonth(c *gin.Context) {
	month, err := types.ParseMonth(c.Param("month"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errMonthInvalid)
		return
	}

	archive, err := api.tracker.ArchivedMonth(month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, ArchivedMonthResponse{Data: archive})
}

// @Summary		Run rollover
// @Description	Archives the previously seen month when the calendar has moved on and advances the last-seen marker. The client calls this on every launch; repeated calls within a month are no-ops
// @Tags			Archive
// @Produce		json
// @Success		200	{object}	RolloverResponse
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/rollover [post]
func (api *API) RunRollover(c *gin.Context) {
	archived, err := api.tracker.Rollover(api.now())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, RolloverResponse{
		Archived:      archived,
		LastSeenMonth: api.today().Month(),
	})
}
