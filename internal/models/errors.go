package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Goal errors
var (
	ErrGoalNameEmpty           = errors.New("the goal name must not be empty")
	ErrGoalImportanceRange     = errors.New("the goal importance must be between 0 and 10")
	ErrGoalMinimumNegative     = errors.New("the minimum per period must not be negative")
	ErrGoalMaximumBelowMinimum = errors.New("the maximum per period must not be lower than the minimum per period")
)

// User errors
var (
	ErrUserEmailNotUnique = errors.New("a user with this email address already exists")
	ErrBaseIncomeNegative = errors.New("the base income must not be negative")
	ErrCurrencyInvalid    = errors.New("the currency must be a valid ISO 4217 currency code")
)
