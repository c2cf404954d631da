package v1

import (
	"net/http"
	"testing"

	"github.com/arushshukla/budget-book/internal/models"
	"github.com/arushshukla/budget-book/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGetSettings() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodGet, "/v1/settings", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response SettingsResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, models.ThemeSystem, response.Data.Theme)
	assert.False(t, response.Data.PasscodeSet)
	assert.Len(t, response.Data.QuickExpenses, 6)
	assert.Equal(t, 3, response.Data.QuickExpenseButtonCount)
}

func (suite *TestSuiteStandard) TestUpdateSettingsPartial() {
	t := suite.T()

	// Only the fields present in the request change
	recorder := test.Request(t, suite.router, http.MethodPatch, "/v1/settings", `{"theme": "dark", "onboardingComplete": true}`)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response SettingsResponse
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, models.ThemeDark, response.Data.Theme)
	assert.True(t, response.Data.OnboardingComplete)
	assert.Equal(t, 3, response.Data.QuickExpenseButtonCount)
}

func (suite *TestSuiteStandard) TestUpdateSettingsPasscode() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodPatch, "/v1/settings", `{"passcode": "1234"}`)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response SettingsResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.True(t, response.Data.PasscodeSet)

	// A present but empty passcode removes the app lock
	recorder = test.Request(t, suite.router, http.MethodPatch, "/v1/settings", `{"passcode": ""}`)
	test.DecodeResponse(t, &recorder, &response)
	assert.False(t, response.Data.PasscodeSet)
}

func (suite *TestSuiteStandard) TestVerifyPasscode() {
	t := suite.T()

	// With no passcode set, every code is valid
	recorder := test.Request(t, suite.router, http.MethodPost, "/v1/settings/passcode/verify", `{"passcode": "0000"}`)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response PasscodeVerifyResponse
	test.DecodeResponse(t, &recorder, &response)
	assert.True(t, response.Data.Valid)

	recorder = test.Request(t, suite.router, http.MethodPatch, "/v1/settings", `{"passcode": "1234"}`)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	recorder = test.Request(t, suite.router, http.MethodPost, "/v1/settings/passcode/verify", `{"passcode": "1234"}`)
	test.DecodeResponse(t, &recorder, &response)
	assert.True(t, response.Data.Valid)

	recorder = test.Request(t, suite.router, http.MethodPost, "/v1/settings/passcode/verify", `{"passcode": "4321"}`)
	test.DecodeResponse(t, &recorder, &response)
	assert.False(t, response.Data.Valid)
}

func (suite *TestSuiteStandard) TestUpdateSettingsKeywords() {
	t := suite.T()

	recorder := test.Request(t, suite.router, http.MethodPatch, "/v1/settings", `{"keywords": {"Guitar Strings": "Fun"}}`)
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var response SettingsResponse
	test.DecodeResponse(t, &recorder, &response)

	// Keywords are lowercased and extend the table
	assert.Equal(t, models.CategoryFun, response.Data.AutoCategoryMap["guitar strings"])
	assert.Equal(t, models.CategoryFood, response.Data.AutoCategoryMap["chai"])

	// The new keyword takes part in classification right away
	recorder = test.Request(t, suite.router, http.MethodGet, "/v1/categories/suggest?item=new guitar strings", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var suggestion SuggestionResponse
	test.DecodeResponse(t, &recorder, &suggestion)
	assert.Equal(t, models.CategoryFun, suggestion.Data)
}

func (suite *TestSuiteStandard) TestUpdateSettingsInvalid() {
	t := suite.T()

	tests := []struct {
		name string
		body string
	}{
		{"bad theme", `{"theme": "neon"}`},
		{"short passcode", `{"passcode": "12"}`},
		{"non-numeric passcode", `{"passcode": "abcd"}`},
		{"button count too low", `{"quickExpenseButtonCount": 2}`},
		{"button count too high", `{"quickExpenseButtonCount": 7}`},
		{"empty keyword", `{"keywords": {" ": "Food"}}`},
		{"bad keyword category", `{"keywords": {"chai": "Gambling"}}`},
		{"bad payday", `{"pocketMoneyInfo": {"amount": 500, "payday": 0, "source": "Monthly Income"}}`},
		{"bad income source", `{"pocketMoneyInfo": {"amount": 500, "payday": 1, "source": "Lottery"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPatch, "/v1/settings", tt.body)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
		})
	}
}
