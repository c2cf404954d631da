package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsExpenses() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodOptions, "/v1/expenses", "")
	test.AssertHTTPStatus(t, http.StatusNoContent, &recorder)
	assert.Equal(t, "GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses", `{"item": "Chai", "amount": 20, "category": "Food", "date": "2024-06-01"}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)

	var response ExpenseResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.NotEmpty(t, response.Data.ID)
	assert.Equal(t, "Chai", response.Data.Item)
	assert.Equal(t, models.CategoryFood, response.Data.Category)
	assert.Equal(t, "2024-06-01", response.Data.Date.String())
}

// Without a category the item text decides, without a date the server's
// today does.
func (suite *TestSuiteStandard) TestCreateExpenseDefaults() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses", `{"item": "bus fare", "amount": 15}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)

	var response ExpenseResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, models.CategoryTransport, response.Data.Category)
	assert.Equal(t, "2024-06-15", response.Data.Date.String())
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalid() {
	t := suite.T()

	tests := []struct {
		name string
		body string
	}{
		{"no body", ""},
		{"broken json", `{"item"`},
		{"empty item", `{"item": " ", "amount": 20}`},
		{"zero amount", `{"item": "Chai"}`},
		{"negative amount", `{"item": "Chai", "amount": -5}`},
		{"unknown category", `{"item": "Chai", "amount": 20, "category": "Gambling"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	t := suite.T()

	for _, body := range []string{
		`{"item": "Chai", "amount": 20, "date": "2024-06-01"}`,
		`{"item": "Movie", "amount": 150, "date": "2024-05-20"}`,
	} {
		recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses", body)
		test.AssertHTTPStatus(t, http.StatusCreated, &recorder)
	}

	recorder := test.Request(t, suite.router, http.MethodGet, "/v1/expenses", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response ExpenseListResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data, 2)

	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses?month=2024-06", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data, 1)
	assert.Equal(t, "Chai", response.Data[0].Item)

	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses?month=June", "")
	test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses", `{"item": "Chai", "amount": 20, "date": "2024-06-01"}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)

	var created ExpenseResponse
	test.DecodeResponse(t, &recorder, &created)

	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses/"+created.Data.ID, "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response ExpenseResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Equal(t, created.Data.ID, response.Data.ID)

	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses/does-not-exist", "")
	test.AssertHTTPStatus(t, http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses", `{"item": "Movie", "amount": 150, "category": "Entertainment", "date": "2024-06-30"}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)

	var created ExpenseResponse
	test.DecodeResponse(t, &recorder, &created)

	// Correcting the date into July moves the expense to that month
	url := fmt.Sprintf("/v1/expenses/%s", created.Data.ID)
	recorder = test.Request(t, suite.router, http.MethodPatch, url, `{"item": "Movie", "amount": 150, "category": "Entertainment", "date": "2024-07-01"}`)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses?month=2024-06", "")
	var response ExpenseListResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Empty(t, response.Data)

	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses?month=2024-07", "")
	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data, 1)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses", `{"item": "Chai", "amount": 20, "date": "2024-06-01"}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)

	var created ExpenseResponse
	test.DecodeResponse(t, &recorder, &created)

	recorder = test.Request(t, suite.router, http.MethodDelete, "/v1/expenses/"+created.Data.ID, "")
	test.AssertHTTPStatus(t, http.StatusNoContent, &recorder)

	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses/"+created.Data.ID, "")
	test.AssertHTTPStatus(t, http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestCreateQuickExpense() {
	t := suite.T()

	// Preset 1 of the defaults is Chai for 20 under Food
	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses/quick", `{"presetId": 1}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)

	var response ExpenseResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "Chai", response.Data.Item)
	assert.Equal(t, models.CategoryFood, response.Data.Category)
	assert.Equal(t, "2024-06-15", response.Data.Date.String())

	recorder = test.Request(t, suite.router, http.MethodPost, "/v1/expenses/quick", `{"presetId": 99}`)
	test.AssertHTTPStatus(t, http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestCaptureExpense() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses/capture", `{"item": "auto rickshaw", "amount": 35}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)

	var response ExpenseResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, "auto rickshaw", response.Data.Item)
	assert.Equal(t, models.CategoryTransport, response.Data.Category)
	assert.Equal(t, "2024-06-15", response.Data.Date.String())
}
