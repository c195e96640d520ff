// Package allocation splits a period income across weighted, bounded goals.
//
// The split happens in passes. First, every active goal is funded with its
// minimum. The remainder is then shared between goals with a positive
// importance, proportional to their importance and capped at their maximum.
// Whatever a cap cuts off is not handed to other goals, it stays leftover.
package allocation

import (
	"fmt"

	"github.com/goalsplit/backend/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal is the input of the engine for a single goal. Its limits must already
// be reconciled to absolute amounts.
type Goal struct {
	ID         uuid.UUID
	Name       string
	Importance decimal.Decimal     // Relative claim on the remainder. Zero means the goal only gets its minimum
	Minimum    decimal.Decimal     // Funded before anything else
	Maximum    decimal.NullDecimal // Unbounded when not valid
	Active     bool                // Inactive goals are not part of the allocation
}

type Allocation struct {
	GoalID     uuid.UUID       `json:"goalId" example:"3d2a31b8-8a6e-4b53-a1cc-2c8ff7b8e0b4"` // ID of the goal
	GoalName   string          `json:"goalName" example:"Rent"`                               // Name of the goal
	Amount     decimal.Decimal `json:"amount" example:"4250"`                                 // Amount allocated, rounded to whole units
	Percentage decimal.Decimal `json:"percentage" example:"42.5"`                             // Share of the income in percent, two decimals
}

type Result struct {
	Income      decimal.Decimal `json:"incomeAmount" example:"10000"` // The income that was allocated
	Allocations []Allocation    `json:"allocations"`                  // One entry per active goal, in input order
	Leftover    decimal.Decimal `json:"leftover" example:"0"`         // Income not allocated to any goal, rounded to whole units
}

// Allocate distributes income across the active goals.
//
// The result lists the active goals in the order they were passed in. No
// partial result is returned on error.
func Allocate(income decimal.Decimal, goals []Goal) (Result, error) {
	if !income.IsPositive() {
		return Result{}, fmt.Errorf("%w, got %s", ErrInvalidIncome, income)
	}

	if len(goals) == 0 {
		return Result{}, ErrNoGoals
	}

	active := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if g.Active {
			active = append(active, g)
		}
	}

	if len(active) == 0 {
		return Result{}, ErrNoActiveGoals
	}

	// Amounts are tracked per position in active, not per ID, so
	// that goals sharing an ID cannot overwrite each other
	amounts := make([]decimal.Decimal, len(active))

	// Minimums
	totalMinimums := decimal.Zero
	for i, g := range active {
		if g.Minimum.IsNegative() {
			return Result{}, fmt.Errorf("%w: goal %q has %s", ErrNegativeMinimum, g.Name, g.Minimum)
		}

		amounts[i] = g.Minimum
		totalMinimums = totalMinimums.Add(g.Minimum)
	}

	if income.LessThan(totalMinimums) {
		return Result{}, fmt.Errorf("%w: income is %s, minimums add up to %s", ErrInsufficientIncome, income, totalMinimums)
	}

	// Weighted distribution of what is left after the minimums
	remaining := income.Sub(totalMinimums)
	remaining = remaining.Sub(distribute(active, amounts, remaining))

	allocations := make([]Allocation, 0, len(active))
	for i, g := range active {
		allocations = append(allocations, Allocation{
			GoalID:     g.ID,
			GoalName:   g.Name,
			Amount:     money.RoundAmount(amounts[i]),
			Percentage: money.Percent(amounts[i], income),
		})
	}

	return Result{
		Income:      income,
		Allocations: allocations,
		Leftover:    money.RoundAmount(remaining),
	}, nil
}

// distribute adds each weighted goal's share of remaining to amounts and
// returns how much of remaining was used.
//
// Shares are computed from the total importance before any goal is funded,
// so the order of goals does not change the outcome.
func distribute(goals []Goal, amounts []decimal.Decimal, remaining decimal.Decimal) decimal.Decimal {
	if !remaining.IsPositive() {
		return decimal.Zero
	}

	totalImportance := decimal.Zero
	for _, g := range goals {
		if g.Importance.IsPositive() {
			totalImportance = totalImportance.Add(g.Importance)
		}
	}

	if !totalImportance.IsPositive() {
		return decimal.Zero
	}

	used := decimal.Zero
	for i, g := range goals {
		if !g.Importance.IsPositive() {
			continue
		}

		share := g.Importance.Mul(remaining).Div(totalImportance)
		proposed := amounts[i].Add(share)

		if g.Maximum.Valid && proposed.GreaterThan(g.Maximum.Decimal) {
			proposed = g.Maximum.Decimal
		}

		extra := proposed.Sub(amounts[i])
		if extra.IsPositive() {
			amounts[i] = proposed
			used = used.Add(extra)
		}
	}

	return used
}
