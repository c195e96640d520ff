package models

import (
	"strings"

	"github.com/goalsplit/backend/internal/allocation"
	"github.com/goalsplit/backend/internal/limits"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GoalTypeDefault is used for goals created without a type.
const GoalTypeDefault = "variable"

var maxImportance = decimal.NewFromInt(10)

type Goal struct {
	DefaultModel
	UserID           uuid.UUID           `gorm:"index"`
	User             User                `json:"-"`
	Name             string
	Type             string              // Free text, e.g. fixed, investing, savings, emergency, variable
	Importance       decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	MinimumPerPeriod decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	MaximumPerPeriod decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	MinimumPercent   decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	MaximumPercent   decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"`
	Target           decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Optional long term target, informational
	Active           bool
	SortOrder        int
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Type = strings.TrimSpace(g.Type)

	if g.Type == "" {
		g.Type = GoalTypeDefault
	}

	return g.Validate()
}

// Validate checks the goal's fields and the relation between its limits.
func (g Goal) Validate() error {
	if g.Name == "" {
		return ErrGoalNameEmpty
	}

	if g.Importance.IsNegative() || g.Importance.GreaterThan(maxImportance) {
		return ErrGoalImportanceRange
	}

	if g.MinimumPerPeriod.IsNegative() {
		return ErrGoalMinimumNegative
	}

	if g.MaximumPerPeriod.Valid && g.MaximumPerPeriod.Decimal.LessThan(g.MinimumPerPeriod) {
		return ErrGoalMaximumBelowMinimum
	}

	return nil
}

// SetMinimum stores a resolved minimum bound. An unset bound resets the
// minimum to zero.
func (g *Goal) SetMinimum(b limits.Bound) {
	g.MinimumPerPeriod = decimal.Zero
	if b.Amount.Valid {
		g.MinimumPerPeriod = b.Amount.Decimal
	}
	g.MinimumPercent = b.Percent
}

// SetMaximum stores a resolved maximum bound. An unset bound removes the maximum.
func (g *Goal) SetMaximum(b limits.Bound) {
	g.MaximumPerPeriod = b.Amount
	g.MaximumPercent = b.Percent
}

// AllocationGoal returns the goal as input for the allocation engine.
func (g Goal) AllocationGoal() allocation.Goal {
	return allocation.Goal{
		ID:         g.ID,
		Name:       g.Name,
		Importance: g.Importance,
		Minimum:    g.MinimumPerPeriod,
		Maximum:    g.MaximumPerPeriod,
		Active:     g.Active,
	}
}
