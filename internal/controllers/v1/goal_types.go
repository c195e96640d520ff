package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/goalsplit/backend/internal/limits"
	"github.com/goalsplit/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// GoalEditable is the closed set of fields that can be set on a goal.
//
// Limits can be given as absolute amounts or as percentages of the user's
// base income. For each bound, an absolute amount takes precedence over a
// percentage. Setting a bound to null removes it.
type GoalEditable struct {
	Name             string              `json:"name" example:"Rent"`                                         // Name of the goal
	Type             string              `json:"type" example:"fixed" default:"variable"`                     // Type of the goal, e.g. fixed, investing, savings, emergency, variable
	Importance       decimal.NullDecimal `json:"importance" example:"5" minimum:"0" maximum:"10" default:"1"` // Weight when distributing income left after all minimums
	MinimumPerPeriod decimal.NullDecimal `json:"minimumPerPeriod" example:"3000" minimum:"0"`                 // Amount the goal gets before any weighted distribution
	MaximumPerPeriod decimal.NullDecimal `json:"maximumPerPeriod" example:"5000" minimum:"0"`                 // Amount the goal never exceeds. Null for no maximum
	MinimumPercent   decimal.NullDecimal `json:"minimumPercent" example:"10" minimum:"0"`                     // Minimum as percentage of the base income
	MaximumPercent   decimal.NullDecimal `json:"maximumPercent" example:"25" minimum:"0"`                     // Maximum as percentage of the base income
	Target           decimal.NullDecimal `json:"target" example:"20000"`                                      // Long term target for the goal
	IsActive         bool                `json:"isActive" example:"true" default:"true"`                      // Inactive goals are not allocated to
	SortOrder        int                 `json:"sortOrder" example:"1" default:"0"`                           // Position of the goal in lists
}

// apply sets all fields listed in fields on goal.
//
// Limit fields are reconciled against baseIncome. Only the bounds that
// have one of their fields in the list are touched.
func (editable GoalEditable) apply(goal *models.Goal, fields []string, baseIncome decimal.Decimal) error {
	for _, field := range fields {
		switch field {
		case "Name":
			goal.Name = editable.Name
		case "Type":
			goal.Type = editable.Type
		case "Importance":
			if !editable.Importance.Valid {
				return errImportanceNull
			}
			goal.Importance = editable.Importance.Decimal
		case "Target":
			goal.Target = editable.Target
		case "IsActive":
			goal.Active = editable.IsActive
		case "SortOrder":
			goal.SortOrder = editable.SortOrder
		}
	}

	base := decimal.NewNullDecimal(baseIncome)

	if slices.Contains(fields, "MinimumPerPeriod") || slices.Contains(fields, "MinimumPercent") {
		b, err := limits.ResolveBound(base, present(fields, "MinimumPerPeriod", editable.MinimumPerPeriod), present(fields, "MinimumPercent", editable.MinimumPercent))
		if err != nil {
			return fmt.Errorf("minimum: %w", err)
		}
		goal.SetMinimum(b)
	}

	if slices.Contains(fields, "MaximumPerPeriod") || slices.Contains(fields, "MaximumPercent") {
		b, err := limits.ResolveBound(base, present(fields, "MaximumPerPeriod", editable.MaximumPerPeriod), present(fields, "MaximumPercent", editable.MaximumPercent))
		if err != nil {
			return fmt.Errorf("maximum: %w", err)
		}
		goal.SetMaximum(b)
	}

	return nil
}

// present returns value if field is in fields, an unset value otherwise.
func present(fields []string, field string, value decimal.NullDecimal) decimal.NullDecimal {
	if slices.Contains(fields, field) {
		return value
	}
	return decimal.NullDecimal{}
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"` // The goal itself
}

type Goal struct {
	models.DefaultModel
	Name             string              `json:"name" example:"Rent"`
	Type             string              `json:"type" example:"fixed"`
	Importance       decimal.Decimal     `json:"importance" example:"5"`
	MinimumPerPeriod decimal.Decimal     `json:"minimumPerPeriod" example:"3000"`
	MaximumPerPeriod decimal.NullDecimal `json:"maximumPerPeriod" example:"5000"`
	MinimumPercent   decimal.NullDecimal `json:"minimumPercent" example:"10"`
	MaximumPercent   decimal.NullDecimal `json:"maximumPercent" example:"16.67"`
	Target           decimal.NullDecimal `json:"target" example:"20000"`
	IsActive         bool                `json:"isActive" example:"true"`
	SortOrder        int                 `json:"sortOrder" example:"1"`
	Links            GoalLinks           `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.ContextURL))

	return Goal{
		DefaultModel:     model.DefaultModel,
		Name:             model.Name,
		Type:             model.Type,
		Importance:       model.Importance,
		MinimumPerPeriod: model.MinimumPerPeriod,
		MaximumPerPeriod: model.MaximumPerPeriod,
		MinimumPercent:   model.MinimumPercent,
		MaximumPercent:   model.MaximumPercent,
		Target:           model.Target,
		IsActive:         model.Active,
		SortOrder:        model.SortOrder,
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/v1/goals/%s", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                          // The resource
}

type GoalQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name, partial match
	Type   string `form:"type"`                       // By type, exact match
	Active bool   `form:"active" filterField:"false"` // Is the goal active?
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}
