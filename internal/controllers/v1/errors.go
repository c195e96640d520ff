package v1

import (
	"errors"
	"net/http"

	"github.com/goalsplit/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"income is less than the total minimum required: income is 4000, minimums add up to 5000"`
}

// status returns the appropriate HTTP status for an error.
//
// Everything that is not a server fault or a missing resource is a problem
// with the request, including all allocation and limit errors.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errImportanceNull = errors.New("importance must be a number between 0 and 10")
	errBaseIncomeNull = errors.New("baseIncome must be a number")
	errCurrencyEmpty  = errors.New("currency must be a non-empty string")
)
