package allocation

import "errors"

var (
	ErrInvalidIncome      = errors.New("income must be a positive number")
	ErrNoGoals            = errors.New("no goals found to allocate to")
	ErrNoActiveGoals      = errors.New("no active goals found to allocate to")
	ErrNegativeMinimum    = errors.New("goal has a negative minimum per period")
	ErrInsufficientIncome = errors.New("income is less than the total minimum required")
)

// Kind returns a short, stable name for the error kind of err.
// It returns an empty string for errors that do not come from this package.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidIncome):
		return "invalid_income"
	case errors.Is(err, ErrNoGoals):
		return "no_goals"
	case errors.Is(err, ErrNoActiveGoals):
		return "no_active_goals"
	case errors.Is(err, ErrNegativeMinimum):
		return "negative_minimum"
	case errors.Is(err, ErrInsufficientIncome):
		return "insufficient_income"
	}
	return ""
}
