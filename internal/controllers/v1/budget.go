package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goalsplit/backend/internal/allocation"
	"github.com/goalsplit/backend/internal/httputil"
	"github.com/goalsplit/backend/internal/models"
	"github.com/shopspring/decimal"
)

type BudgetPreviewEditable struct {
	Income decimal.NullDecimal `json:"income" example:"12000"` // Income to allocate. Defaults to the base income of the user
}

type BudgetPreviewQueryFilter struct {
	Active bool `form:"active"` // Only use active goals
}

type BudgetPreview struct {
	Currency    string                  `json:"currency" example:"SEK"`       // Currency of all amounts
	Income      decimal.Decimal         `json:"incomeAmount" example:"10000"` // The income that was allocated
	Allocations []allocation.Allocation `json:"allocations"`                  // Allocation per active goal, in goal order
	Leftover    decimal.Decimal         `json:"leftover" example:"0"`         // Income not allocated to any goal
}

type BudgetPreviewResponse struct {
	Error *string        `json:"error" example:"no active goals found to allocate to"` // The error, if any occurred
	Data  *BudgetPreview `json:"data"`                                                 // The preview
}

func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/preview", OptionsBudgetPreview)
	r.POST("/preview", CreateBudgetPreview)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/preview [options]
func OptionsBudgetPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Preview budget
// @Description	Splits an income across the goals of the user. Nothing is persisted.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetPreviewResponse
// @Failure		400		{object}	BudgetPreviewResponse
// @Failure		500		{object}	BudgetPreviewResponse
// @Param			active	query		bool					false	"Only use active goals"
// @Param			preview	body		BudgetPreviewEditable	false	"Income override"
// @Router			/v1/budgets/preview [post]
func CreateBudgetPreview(c *gin.Context) {
	preview, err := budgetPreview(c)
	countPreview(err)

	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetPreviewResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetPreviewResponse{Data: &preview})
}

func budgetPreview(c *gin.Context) (BudgetPreview, error) {
	var filter BudgetPreviewQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return BudgetPreview{}, err
	}

	var data BudgetPreviewEditable
	if httputil.HasBody(c) {
		if err := httputil.BindData(c, &data); err != nil {
			return BudgetPreview{}, err
		}
	}

	user := currentUser(c)
	income := user.BaseIncome
	if data.Income.Valid {
		income = data.Income.Decimal
	}

	q := models.DB.
		Order("goals.sort_order ASC, goals.created_at ASC").
		Where(&models.Goal{UserID: user.ID})

	if filter.Active {
		q = q.Where("goals.active = ?", true)
	}

	var goals []models.Goal
	if err := q.Find(&goals).Error; err != nil {
		return BudgetPreview{}, err
	}

	input := make([]allocation.Goal, 0, len(goals))
	for _, goal := range goals {
		input = append(input, goal.AllocationGoal())
	}

	result, err := allocation.Allocate(income, input)
	if err != nil {
		return BudgetPreview{}, err
	}

	return BudgetPreview{
		Currency:    user.Currency,
		Income:      result.Income,
		Allocations: result.Allocations,
		Leftover:    result.Leftover,
	}, nil
}
