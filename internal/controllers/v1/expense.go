package v1

import (
	"net/http"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with the
// RouterGroup that is passed.
func (api *API) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", api.GetExpenses)
		r.POST("", api.CreateExpense)
	}

	// Quick-add preset and parsed voice input
	{
		r.OPTIONS("/quick", httputil.OptionsPost)
		r.POST("/quick", api.CreateQuickExpense)
		r.OPTIONS("/capture", httputil.OptionsPost)
		r.POST("/capture", api.CaptureExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", api.GetExpense)
		r.PATCH("/:id", api.UpdateExpense)
		r.DELETE("/:id", api.DeleteExpense)
	}
}

// ExpenseEditable is the request body for creating and updating
// expenses.
type ExpenseEditable struct {
	Item     string          `json:"item" example:"Chai"`                  // Description of the expense
	Amount   decimal.Decimal `json:"amount" example:"20"`                  // Amount in currency units
	Category models.Category `json:"category" example:"Food" default:""`   // Omit to auto-categorize from the item text
	Date     types.Date      `json:"date" example:"2024-06-01" default:""` // Omit to use today
}

// ExpenseResponse wraps a single expense.
type ExpenseResponse struct {
	Data models.Expense `json:"data"`
}

// ExpenseListResponse wraps a list of expenses.
type ExpenseListResponse struct {
	Data []models.Expense `json:"data"`
}

// @Summary		Get expenses
// @Description	Returns the expenses of one month, or of all months including the archive
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Only the expenses of this month (YYYY-MM)"
// @Router			/v1/expenses [get]
func (api *API) GetExpenses(c *gin.Context) {
	if raw, ok := c.GetQuery("month"); ok {
		month, err := types.ParseMonth(raw)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, errMonthInvalid)
			return
		}

		c.JSON(http.StatusOK, ExpenseListResponse{Data: api.ledger.ForMonth(month)})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: api.ledger.All()})
}

// @Summary		Get expense
// @Description	Returns one expense by its ID
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func (api *API) GetExpense(c *gin.Context) {
	expense, err := api.ledger.Find(c.Param("id"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Create expense
// @Description	Creates a new expense. Without a category the item text is auto-categorized, without a date the expense is dated today
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (api *API) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if editable.Category == "" {
		editable.Category = api.categorizer().Classify(editable.Item)
	}

	if editable.Date.IsZero() {
		editable.Date = api.today()
	}

	expense, err := api.ledger.Add(editable.Item, editable.Amount, editable.Category, editable.Date)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// QuickExpenseCreate selects the preset to turn into an expense.
type QuickExpenseCreate struct {
	PresetID int `json:"presetId" example:"1"` // ID of the quick expense preset
}

// @Summary		Create expense from preset
// @Description	Creates an expense dated today from one of the quick expense presets
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			preset	body		QuickExpenseCreate	true	"Preset selection"
// @Router			/v1/expenses/quick [post]
func (api *API) CreateQuickExpense(c *gin.Context) {
	var create QuickExpenseCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	var preset *models.QuickExpense
	for _, q := range api.store.Load().QuickExpenses {
		if q.ID == create.PresetID {
			preset = &q
			break
		}
	}

	if preset == nil {
		httputil.NewError(c, http.StatusNotFound, errQuickExpenseUnknown)
		return
	}

	expense, err := api.ledger.Add(preset.Name, preset.Amount, preset.Category, api.today())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// CaptureCreate is an already-parsed item and amount, as produced by
// the voice input collaborator.
type CaptureCreate struct {
	Item   string          `json:"item" example:"bus fare"`
	Amount decimal.Decimal `json:"amount" example:"15"`
}

// @Summary		Capture expense
// @Description	Creates an auto-categorized expense dated today from a parsed item and amount pair
// @Tags			Expenses
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			capture	body		CaptureCreate	true	"Parsed input"
// @Router			/v1/expenses/capture [post]
func (api *API) CaptureExpense(c *gin.Context) {
	var create CaptureCreate
	if err := httputil.BindData(c, &create); err != nil {
		return
	}

	category := api.categorizer().Classify(create.Item)

	expense, err := api.ledger.Add(create.Item, create.Amount, category, api.today())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: expense})
}

// @Summary		Update expense
// @Description	Updates an expense in place. When the date moves to another month the expense moves with it. Unknown IDs are a no-op
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			id		path		string			true	"ID of the expense"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func (api *API) UpdateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	expense := models.Expense{
		ID:       c.Param("id"),
		Item:     editable.Item,
		Amount:   editable.Amount,
		Category: editable.Category,
		Date:     editable.Date,
	}

	if err := api.ledger.Update(expense); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Unknown IDs are a no-op
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (api *API) DeleteExpense(c *gin.Context) {
	if err := api.ledger.Delete(c.Param("id")); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
