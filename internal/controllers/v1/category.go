package v1

import (
	"net/http"
	"strings"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for the category taxonomy
// with the RouterGroup that is passed.
func (api *API) RegisterCategoryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", api.GetCategories)
	}
	{
		r.OPTIONS("/suggest", httputil.OptionsGet)
		r.GET("/suggest", api.SuggestCategory)
	}
}

// CategoryListResponse wraps the category taxonomy.
type CategoryListResponse struct {
	Data []models.Category `json:"data"`
}

// SuggestionResponse wraps a category suggestion for an item text.
type SuggestionResponse struct {
	Data models.Category `json:"data"`
}

// @Summary		Get categories
// @Description	Returns the fixed list of spending categories
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func (api *API) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: models.Categories()})
}

// @Summary		Suggest category
// @Description	Classifies a free-text item description into a category. Used for live suggestions while the user types
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	SuggestionResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			item	query		string	true	"Item description"
// @Router			/v1/categories/suggest [get]
func (api *API) SuggestCategory(c *gin.Context) {
	item := strings.TrimSpace(c.Query("item"))
	if item == "" {
		httputil.NewError(c, http.StatusBadRequest, models.ErrItemEmpty)
		return
	}

	c.JSON(http.StatusOK, SuggestionResponse{Data: api.categorizer().Classify(item)})
}
