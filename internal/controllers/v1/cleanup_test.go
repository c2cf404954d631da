package v1

import (
	"net/http"

	"github.com/arushshukla/budget-book/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestResetCurrentMonth() {
	t := suite.T()

	// One expense in the current month, one in the previous
	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/expenses", `{"item": "Chai", "amount": 20, "date": "2024-06-01"}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)
	recorder = test.Request(t, suite.router, http.MethodPost, "/v1/expenses", `{"item": "Movie", "amount": 150, "date": "2024-05-20"}`)
	test.AssertHTTPStatus(t, http.StatusCreated, &recorder)

	recorder = test.Request(t, suite.router, http.MethodPut, "/v1/budgets", `{"Food": 50}`)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	recorder = test.Request(t, suite.router, http.MethodDelete, "/v1?confirm=yes-please-reset-this-month", "")
	test.AssertHTTPStatus(t, http.StatusNoContent, &recorder)

	// The current month is empty, the previous one untouched
	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses?month=2024-06", "")
	var response ExpenseListResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.Empty(t, response.Data)

	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/expenses?month=2024-05", "")
	test.DecodeResponse(t, &recorder, &response)
	assert.Len(t, response.Data, 1)

	// The budgets are back at their defaults
	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/budgets", "")
	var budgets BudgetsResponse
	test.DecodeResponse(t, &recorder, &budgets)
	assert.Len(t, budgets.Data, 3)
}

func (suite *TestSuiteStandard) TestResetCurrentMonthConfirmation() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodDelete, "/v1", "")
	test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)

	recorder = test.Request(t, suite.router, http.MethodDelete, "/v1?confirm=yes", "")
	test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
}
