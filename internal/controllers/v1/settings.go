package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalsplit/backend/internal/httputil"
	"github.com/goalsplit/backend/internal/models"
	"github.com/shopspring/decimal"
)

type SettingsEditable struct {
	Currency   string              `json:"currency" example:"EUR"`                 // ISO 4217 currency code
	BaseIncome decimal.NullDecimal `json:"baseIncome" example:"35000" minimum:"0"` // Income per period, used for percentage limits and as default preview income
}

type SettingsLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/settings"` // The settings themselves
	Goals string `json:"goals" example:"https://example.com/api/v1/goals"`   // The goals of the user
}

type Settings struct {
	Email      string          `json:"email" example:"demo@local"`
	Currency   string          `json:"currency" example:"SEK"`
	BaseIncome decimal.Decimal `json:"baseIncome" example:"35000"`
	Links      SettingsLinks   `json:"links"`
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"the currency must be a valid ISO 4217 currency code"` // The error, if any occurred
	Data  *Settings `json:"data"`                                                                // The settings
}

func newSettings(c *gin.Context, user models.User) Settings {
	url := c.GetString(string(models.ContextURL))

	return Settings{
		Email:      user.Email,
		Currency:   user.Currency,
		BaseIncome: user.BaseIncome,
		Links: SettingsLinks{
			Self:  fmt.Sprintf("%s/v1/settings", url),
			Goals: fmt.Sprintf("%s/v1/goals", url),
		},
	}
}

func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings of the current user
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings := newSettings(c, currentUser(c))
	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update settings
// @Description	Updates the settings of the current user. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	var data SettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	for _, field := range updateFields {
		switch field {
		case "Currency":
			if data.Currency == "" {
				err = errCurrencyEmpty
			}
			user.Currency = data.Currency
		case "BaseIncome":
			if !data.BaseIncome.Valid {
				err = errBaseIncomeNull
			}
			user.BaseIncome = data.BaseIncome.Decimal
		}
	}

	if err == nil {
		err = models.DB.Save(&user).Error
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	settings := newSettings(c, user)
	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}
