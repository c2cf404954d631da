package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/arushshukla/budget-book/internal/httputil"
	"github.com/arushshukla/budget-book/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSettingsRoutes registers the routes for settings with the
// RouterGroup that is passed.
func (api *API) RegisterSettingsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPatch)
		r.GET("", api.GetSettings)
		r.PATCH("", api.UpdateSettings)
	}
	{
		r.OPTIONS("/passcode/verify", httputil.OptionsPost)
		r.POST("/passcode/verify", api.VerifyPasscode)
	}
}

// Settings is the part of the aggregate the settings screen works on.
type Settings struct {
	PocketMoneyInfo          models.PocketMoneyInfo     `json:"pocketMoneyInfo"`
	Theme                    models.Theme               `json:"theme"`
	PasscodeSet              bool                       `json:"passcodeSet"`
	OnboardingComplete       bool                       `json:"onboardingComplete"`
	QuickExpenses            []models.QuickExpense      `json:"quickExpenses"`
	QuickExpenseButtonCount  int                        `json:"quickExpenseButtonCount"`
	HasShownSavingsEducation bool                       `json:"hasShownSavingsEducation"`
	AutoCategoryMap          map[string]models.Category `json:"autoCategoryMap"`
}

// SettingsResponse wraps the settings view.
type SettingsResponse struct {
	Data Settings `json:"data"`
}

// SettingsUpdate is the request body for changing settings. Only the
// fields that are present change; a present but empty passcode removes
// the app lock. Keywords extend the auto-category table, they never
// remove entries.
type SettingsUpdate struct {
	PocketMoneyInfo          *models.PocketMoneyInfo    `json:"pocketMoneyInfo"`
	Theme                    *models.Theme              `json:"theme"`
	Passcode                 *string                    `json:"passcode"`
	OnboardingComplete       *bool                      `json:"onboardingComplete"`
	QuickExpenses            *[]models.QuickExpense     `json:"quickExpenses"`
	QuickExpenseButtonCount  *int                       `json:"quickExpenseButtonCount"`
	HasShownSavingsEducation *bool                      `json:"hasShownSavingsEducation"`
	Keywords                 map[string]models.Category `json:"keywords"`
}

func newSettings(data models.AppData) Settings {
	return Settings{
		PocketMoneyInfo:          data.PocketMoneyInfo,
		Theme:                    data.Theme,
		PasscodeSet:              data.Passcode != "",
		OnboardingComplete:       data.OnboardingComplete,
		QuickExpenses:            data.QuickExpenses,
		QuickExpenseButtonCount:  data.QuickExpenseButtonCount,
		HasShownSavingsEducation: data.HasShownSavingsEducation,
		AutoCategoryMap:          data.AutoCategoryMap,
	}
}

// @Summary		Get settings
// @Description	Returns the settings view of the aggregate. The passcode itself is never returned, only whether one is set
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Router			/v1/settings [get]
func (api *API) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, SettingsResponse{Data: newSettings(api.store.Load())})
}

// @Summary		Update settings
// @Description	Changes the fields present in the request and leaves the rest untouched
// @Tags			Settings
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	httputil.HTTPError
// @Param			settings	body		SettingsUpdate	true	"Settings"
// @Router			/v1/settings [patch]
func (api *API) UpdateSettings(c *gin.Context) {
	var update SettingsUpdate
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	if err := validateSettingsUpdate(update); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	var settings Settings
	err := api.store.Update(func(data *models.AppData) error {
		if update.PocketMoneyInfo != nil {
			data.PocketMoneyInfo = *update.PocketMoneyInfo
		}
		if update.Theme != nil {
			data.Theme = *update.Theme
		}
		if update.Passcode != nil {
			data.Passcode = *update.Passcode
		}
		if update.OnboardingComplete != nil {
			data.OnboardingComplete = *update.OnboardingComplete
		}
		if update.QuickExpenses != nil {
			data.QuickExpenses = *update.QuickExpenses
		}
		if update.QuickExpenseButtonCount != nil {
			data.QuickExpenseButtonCount = *update.QuickExpenseButtonCount
		}
		if update.HasShownSavingsEducation != nil {
			data.HasShownSavingsEducation = *update.HasShownSavingsEducation
		}
		for keyword, category := range update.Keywords {
			data.AutoCategoryMap[strings.ToLower(strings.TrimSpace(keyword))] = category
		}

		settings = newSettings(*data)
		return nil
	})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: settings})
}

// PasscodeVerify is the request body for checking the app-lock code.
type PasscodeVerify struct {
	Passcode string `json:"passcode" example:"1234"`
}

// PasscodeVerifyResponse reports whether the submitted code matches.
type PasscodeVerifyResponse struct {
	Data PasscodeVerifyObject `json:"data"`
}

type PasscodeVerifyObject struct {
	Valid bool `json:"valid"`
}

// @Summary		Verify passcode
// @Description	Checks a submitted code against the stored app-lock passcode. With no passcode set, every code is valid
// @Tags			Settings
// @Produce		json
// @Success		200			{object}	PasscodeVerifyResponse
// @Failure		400			{object}	httputil.HTTPError
// @Param			passcode	body		PasscodeVerify	true	"Code to check"
// @Router			/v1/settings/passcode/verify [post]
func (api *API) VerifyPasscode(c *gin.Context) {
	var verify PasscodeVerify
	if err := httputil.BindData(c, &verify); err != nil {
		return
	}

	stored := api.store.Load().Passcode

	c.JSON(http.StatusOK, PasscodeVerifyResponse{
		Data: PasscodeVerifyObject{
			Valid: stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(verify.Passcode)) == 1,
		},
	})
}

func validateSettingsUpdate(update SettingsUpdate) error {
	if update.PocketMoneyInfo != nil {
		if err := update.PocketMoneyInfo.Validate(); err != nil {
			return err
		}
	}

	if update.Theme != nil && !update.Theme.Valid() {
		return models.ErrThemeInvalid
	}

	if update.Passcode != nil && *update.Passcode != "" {
		if len(*update.Passcode) != 4 || strings.Trim(*update.Passcode, "0123456789") != "" {
			return models.ErrPasscodeInvalid
		}
	}

	if update.QuickExpenses != nil {
		for i := range *update.QuickExpenses {
			if err := (*update.QuickExpenses)[i].Validate(); err != nil {
				return err
			}
		}
	}

	if update.QuickExpenseButtonCount != nil {
		if *update.QuickExpenseButtonCount < 3 || *update.QuickExpenseButtonCount > 6 {
			return models.ErrButtonCountInvalid
		}
	}

	for keyword, category := range update.Keywords {
		if strings.TrimSpace(keyword) == "" {
			return models.ErrKeywordEmpty
		}
		if !category.Valid() {
			return models.ErrCategoryInvalid
		}
	}

	return nil
}
