package v1

import (
	"io"
	"net/http"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBackupRoutes registers the backup and restore routes with the
// RouterGroup that is passed.
func (api *API) RegisterBackupRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/export", httputil.OptionsGet)
		r.GET("/export", api.ExportBackup)
	}
	{
		r.OPTIONS("/import", httputil.OptionsPost)
		r.POST("/import", api.ImportBackup)
	}
}

// @Summary		Export backup
// @Description	Returns the full serialized aggregate as a downloadable file
// @Tags			Backup
// @Produce		json
// @Success		200
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/export [get]
func (api *API) ExportBackup(c *gin.Context) {
	raw, err := api.store.Export()
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, models.ErrGeneral)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="budget-book-backup.json"`)
	c.Data(http.StatusOK, "application/json", raw)
}

// @Summary		Import backup
// @Description	Validates a backup file and wholesale-replaces the stored aggregate. An invalid file is rejected and existing data stays untouched
// @Tags			Backup
// @Accept			json
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Router			/v1/import [post]
func (api *API) ImportBackup(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, models.ErrBackupUnparseable)
		return
	}

	if err := api.store.Import(raw); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
