// Package limits reconciles goal limits that may be given either as absolute
// amounts or as percentages of a base income.
//
// Each bound (minimum and maximum) is resolved on its own. An absolute amount
// is authoritative; the percentage is derived from it when the base income is
// usable. A percentage alone is turned into an amount, which needs a positive
// base income.
package limits

import (
	"errors"
	"fmt"

	"github.com/goalsplit/backend/internal/money"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeLimit = errors.New("limits must not be negative")
	ErrNoBaseIncome  = errors.New("cannot derive an absolute amount without a positive base income")
)

// Bound is one resolved limit. Both fields are unset when the bound was not given.
type Bound struct {
	Amount  decimal.NullDecimal `json:"amount"`
	Percent decimal.NullDecimal `json:"percent"`
}

// IsSet reports if the bound carries a value.
func (b Bound) IsSet() bool {
	return b.Amount.Valid
}

// Raw is the unreconciled input for both bounds of a goal.
type Raw struct {
	Minimum        decimal.NullDecimal
	Maximum        decimal.NullDecimal
	MinimumPercent decimal.NullDecimal
	MaximumPercent decimal.NullDecimal
}

// Limits are the canonical bounds of a goal.
type Limits struct {
	Minimum Bound `json:"minimum"`
	Maximum Bound `json:"maximum"`
}

// MinimumAmount returns the minimum amount, which is zero when no minimum is set.
func (l Limits) MinimumAmount() decimal.Decimal {
	if l.Minimum.Amount.Valid {
		return l.Minimum.Amount.Decimal
	}
	return decimal.Zero
}

// Resolve reconciles both bounds against baseIncome.
//
// The bounds are resolved independently, the minimum first. An error for
// either bound is returned as is.
func Resolve(baseIncome decimal.NullDecimal, raw Raw) (Limits, error) {
	minimum, err := ResolveBound(baseIncome, raw.Minimum, raw.MinimumPercent)
	if err != nil {
		return Limits{}, fmt.Errorf("minimum: %w", err)
	}

	maximum, err := ResolveBound(baseIncome, raw.Maximum, raw.MaximumPercent)
	if err != nil {
		return Limits{}, fmt.Errorf("maximum: %w", err)
	}

	return Limits{Minimum: minimum, Maximum: maximum}, nil
}

// ResolveBound reconciles a single bound given as an absolute amount and/or a
// percentage of baseIncome.
func ResolveBound(baseIncome, amount, percent decimal.NullDecimal) (Bound, error) {
	if amount.Valid && amount.Decimal.IsNegative() {
		return Bound{}, fmt.Errorf("%w, got amount %s", ErrNegativeLimit, amount.Decimal)
	}

	if percent.Valid && percent.Decimal.IsNegative() {
		return Bound{}, fmt.Errorf("%w, got percentage %s", ErrNegativeLimit, percent.Decimal)
	}

	usable := baseIncome.Valid && baseIncome.Decimal.IsPositive()

	switch {
	case amount.Valid:
		b := Bound{Amount: amount}
		if usable {
			b.Percent = decimal.NewNullDecimal(money.Percent(amount.Decimal, baseIncome.Decimal))
		} else if percent.Valid {
			// Nothing to check the given percentage against, keep it as informational
			b.Percent = decimal.NewNullDecimal(money.RoundPercent(percent.Decimal))
		}
		return b, nil

	case percent.Valid:
		if !usable {
			return Bound{}, fmt.Errorf("%w, percentage %s given", ErrNoBaseIncome, percent.Decimal)
		}

		return Bound{
			Amount:  decimal.NewNullDecimal(money.FromPercent(percent.Decimal, baseIncome.Decimal)),
			Percent: decimal.NewNullDecimal(money.RoundPercent(percent.Decimal)),
		}, nil
	}

	return Bound{}, nil
}
