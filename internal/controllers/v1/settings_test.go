package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/goalsplit/backend/internal/controllers/v1"
	"github.com/goalsplit/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSettingsGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("demo@local", response.Data.Email)
	suite.Assert().Equal("SEK", response.Data.Currency)
	assertDecimal(suite.T(), "0", response.Data.BaseIncome)
	suite.Assert().Equal("http://example.com/v1/settings", response.Data.Links.Self)
	suite.Assert().Equal("http://example.com/v1/goals", response.Data.Links.Goals)
}

func (suite *TestSuiteStandard) TestSettingsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"currency":   "eur",
		"baseIncome": "42000.50",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("EUR", response.Data.Currency)
	assertDecimal(suite.T(), "42000.5", response.Data.BaseIncome)

	// Only the given field changes
	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"baseIncome": "100"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("EUR", response.Data.Currency)
	assertDecimal(suite.T(), "100", response.Data.BaseIncome)
}

func (suite *TestSuiteStandard) TestSettingsPerUser() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"currency": "USD"}, as("other@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("SEK", response.Data.Currency)
}

func (suite *TestSuiteStandard) TestSettingsUpdateFails() {
	tests := []struct {
		name  string
		body  any
		error string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Unknown currency", map[string]any{"currency": "NOPE"}, "valid ISO 4217 currency code"},
		{"Empty currency", map[string]any{"currency": ""}, "currency must be a non-empty string"},
		{"Negative income", map[string]any{"baseIncome": "-1"}, "the base income must not be negative"},
		{"Null income", map[string]any{"baseIncome": nil}, "baseIncome must be a number"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/settings", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.SettingsResponse
			test.DecodeResponse(t, &r, &response)
			if assert.NotNil(t, response.Error) {
				assert.Contains(t, *response.Error, tt.error)
			}
		})
	}
}
