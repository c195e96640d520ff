package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/goalsplit/backend/internal/controllers/v1"
	"github.com/goalsplit/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoalsCreateDefaults() {
	goal := createTestGoal(suite.T(), map[string]any{"name": "  Rent "})

	suite.Assert().Equal("Rent", goal.Name)
	suite.Assert().Equal("variable", goal.Type)
	suite.Assert().True(goal.IsActive)
	assertDecimal(suite.T(), "1", goal.Importance)
	assertDecimal(suite.T(), "0", goal.MinimumPerPeriod)
	assertNullDecimal(suite.T(), "", goal.MaximumPerPeriod)
	assertNullDecimal(suite.T(), "", goal.Target)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/goals/%s", goal.ID), goal.Links.Self)
}

func (suite *TestSuiteStandard) TestGoalsCreateLimits() {
	setBaseIncome(suite.T(), "30000")

	tests := []struct {
		name       string
		body       map[string]any
		minimum    string
		minPercent string
		maximum    string
		maxPercent string
	}{
		{
			"Absolute amounts",
			map[string]any{"minimumPerPeriod": "3000", "maximumPerPeriod": "6000"},
			"3000", "10", "6000", "20",
		},
		{
			"Percentages",
			map[string]any{"minimumPercent": "10", "maximumPercent": "25"},
			"3000", "10", "7500", "25",
		},
		{
			"Amount wins over percentage",
			map[string]any{"minimumPerPeriod": "4000", "minimumPercent": "99"},
			"4000", "13.33", "", "",
		},
		{
			"Null maximum",
			map[string]any{"minimumPerPeriod": "100", "maximumPerPeriod": nil},
			"100", "0.33", "", "",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			goal := createTestGoal(t, tt.body)

			assertDecimal(t, tt.minimum, goal.MinimumPerPeriod)
			assertNullDecimal(t, tt.minPercent, goal.MinimumPercent)
			assertNullDecimal(t, tt.maximum, goal.MaximumPerPeriod)
			assertNullDecimal(t, tt.maxPercent, goal.MaximumPercent)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	tests := []struct {
		name  string
		body  any
		error string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Broken body", `{ "name": 2 `, "invalid or un-parseable data"},
		{"Empty name", map[string]any{"name": " "}, "the goal name must not be empty"},
		{"Importance too high", map[string]any{"name": "Rent", "importance": "11"}, "the goal importance must be between 0 and 10"},
		{"Importance null", map[string]any{"name": "Rent", "importance": nil}, "importance must be a number between 0 and 10"},
		{"Negative minimum", map[string]any{"name": "Rent", "minimumPerPeriod": "-1"}, "minimum: limits must not be negative"},
		{"Maximum below minimum", map[string]any{"name": "Rent", "minimumPerPeriod": "200", "maximumPerPeriod": "100"}, "the maximum per period must not be lower than the minimum per period"},
		{"Percentage without base income", map[string]any{"name": "Rent", "minimumPercent": "10"}, "minimum: cannot derive an absolute amount without a positive base income"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.GoalResponse
			test.DecodeResponse(t, &r, &response)
			assert.Nil(t, response.Data)
			if assert.NotNil(t, response.Error) {
				assert.Contains(t, *response.Error, tt.error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetList() {
	createTestGoal(suite.T(), map[string]any{"name": "Savings", "type": "savings", "sortOrder": 2})
	createTestGoal(suite.T(), map[string]any{"name": "Rent", "type": "fixed", "sortOrder": 1})
	createTestGoal(suite.T(), map[string]any{"name": "Old savings", "type": "savings", "sortOrder": 3, "isActive": false})

	// Goals of other users are never listed
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/goals", map[string]any{"name": "Foreign"}, as("other@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		query string
		names []string
		total int64
	}{
		{"", []string{"Rent", "Savings", "Old savings"}, 3},
		{"active=true", []string{"Rent", "Savings"}, 2},
		{"active=false", []string{"Old savings"}, 1},
		{"type=savings", []string{"Savings", "Old savings"}, 2},
		{"name=sav", []string{"Savings", "Old savings"}, 2},
		{"limit=1", []string{"Rent"}, 3},
		{"offset=1&limit=1", []string{"Savings"}, 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/goals?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalListResponse
			test.DecodeResponse(t, &r, &response)

			names := make([]string, 0, len(response.Data))
			for _, goal := range response.Data {
				names = append(names, goal.Name)
			}

			assert.Equal(t, tt.names, names)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.names), response.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsGetListBadRequest() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/goals?active=maybe", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGoalsGet() {
	goal := createTestGoal(suite.T(), map[string]any{"name": "Rent"})

	tests := []struct {
		name   string
		url    string
		status int
		header map[string]string
	}{
		{"Existing", goal.Links.Self, http.StatusOK, nil},
		{"Not a UUID", "http://example.com/v1/goals/not-a-uuid", http.StatusBadRequest, nil},
		{"Unknown", fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), http.StatusNotFound, nil},
		{"Other user", goal.Links.Self, http.StatusNotFound, as("other@example.com")},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var headers []map[string]string
			if tt.header != nil {
				headers = append(headers, tt.header)
			}

			r := test.Request(t, http.MethodGet, tt.url, "", headers...)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsNotFoundMessage() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("there is no goal matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	setBaseIncome(suite.T(), "20000")

	tests := []struct {
		name       string
		body       map[string]any
		minimum    string
		minPercent string
		maximum    string
		maxPercent string
	}{
		{"Name only keeps limits", map[string]any{"name": "Renamed"}, "1000", "5", "5000", "25"},
		{"Minimum percentage", map[string]any{"minimumPercent": "20"}, "4000", "20", "5000", "25"},
		{"Minimum amount wins", map[string]any{"minimumPerPeriod": "2000", "minimumPercent": "50"}, "2000", "10", "5000", "25"},
		{"Clear maximum", map[string]any{"maximumPerPeriod": nil}, "1000", "5", "", ""},
		{"Clear maximum percentage", map[string]any{"maximumPercent": nil}, "1000", "5", "", ""},
		{"Clear minimum", map[string]any{"minimumPerPeriod": nil, "minimumPercent": nil}, "0", "", "5000", "25"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			goal := createTestGoal(t, map[string]any{"minimumPerPeriod": "1000", "maximumPerPeriod": "5000"})

			r := test.Request(t, http.MethodPatch, goal.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.GoalResponse
			test.DecodeResponse(t, &r, &response)

			assertDecimal(t, tt.minimum, response.Data.MinimumPerPeriod)
			assertNullDecimal(t, tt.minPercent, response.Data.MinimumPercent)
			assertNullDecimal(t, tt.maximum, response.Data.MaximumPerPeriod)
			assertNullDecimal(t, tt.maxPercent, response.Data.MaximumPercent)

			// The update is persisted
			r = test.Request(t, http.MethodGet, goal.Links.Self, "")
			var stored v1.GoalResponse
			test.DecodeResponse(t, &r, &stored)
			assert.True(t, response.Data.MinimumPerPeriod.Equal(stored.Data.MinimumPerPeriod))
			assert.Equal(t, response.Data.MaximumPerPeriod.Valid, stored.Data.MaximumPerPeriod.Valid)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdateFields() {
	goal := createTestGoal(suite.T(), map[string]any{"name": "Emergency fund"})

	r := test.Request(suite.T(), http.MethodPatch, goal.Links.Self, map[string]any{
		"type":       "emergency",
		"importance": "7.5",
		"target":     "50000",
		"isActive":   false,
		"sortOrder":  4,
		"unknown":    "ignored",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("Emergency fund", response.Data.Name)
	suite.Assert().Equal("emergency", response.Data.Type)
	suite.Assert().False(response.Data.IsActive)
	suite.Assert().Equal(4, response.Data.SortOrder)
	assertDecimal(suite.T(), "7.5", response.Data.Importance)
	assertNullDecimal(suite.T(), "50000", response.Data.Target)
}

func (suite *TestSuiteStandard) TestGoalsUpdateFails() {
	goal := createTestGoal(suite.T(), map[string]any{"name": "Rent", "minimumPerPeriod": "1000", "maximumPerPeriod": "5000"})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "name": `, http.StatusBadRequest},
		{"Wrong type", `{ "sortOrder": "first" }`, http.StatusBadRequest},
		{"Empty name", map[string]any{"name": ""}, http.StatusBadRequest},
		{"Importance null", map[string]any{"importance": nil}, http.StatusBadRequest},
		{"Minimum above maximum", map[string]any{"minimumPerPeriod": "9000"}, http.StatusBadRequest},
		{"Percentage without base income", map[string]any{"maximumPercent": "10"}, http.StatusBadRequest},
		{"Negative maximum", map[string]any{"maximumPerPeriod": "-10"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, goal.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Nothing was changed by the failed updates
	r := test.Request(suite.T(), http.MethodGet, goal.Links.Self, "")
	var stored v1.GoalResponse
	test.DecodeResponse(suite.T(), &r, &stored)

	suite.Assert().Equal("Rent", stored.Data.Name)
	assertDecimal(suite.T(), "1000", stored.Data.MinimumPerPeriod)
	assertNullDecimal(suite.T(), "5000", stored.Data.MaximumPerPeriod)
	assertDecimal(suite.T(), "1", stored.Data.Importance)
}

func (suite *TestSuiteStandard) TestGoalsUpdateOtherUser() {
	goal := createTestGoal(suite.T(), map[string]any{"name": "Rent"})

	r := test.Request(suite.T(), http.MethodPatch, goal.Links.Self, map[string]any{"name": "Stolen"}, as("other@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := createTestGoal(suite.T(), map[string]any{"name": "Rent"})

	r := test.Request(suite.T(), http.MethodDelete, goal.Links.Self, "", as("other@example.com"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, goal.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGoalsOptions() {
	goal := createTestGoal(suite.T(), map[string]any{"name": "Rent"})

	tests := []struct {
		name   string
		url    string
		status int
		allow  string
	}{
		{"List", "http://example.com/v1/goals", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Detail", goal.Links.Self, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Unknown", fmt.Sprintf("http://example.com/v1/goals/%s", uuid.New()), http.StatusNotFound, ""},
		{"Not a UUID", "http://example.com/v1/goals/nope", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsDatabaseClosed() {
	goal := createTestGoal(suite.T(), map[string]any{"name": "Rent"})
	suite.CloseDB()

	tests := []struct {
		method string
		url    string
		body   any
	}{
		{http.MethodGet, "http://example.com/v1/goals", ""},
		{http.MethodPost, "http://example.com/v1/goals", map[string]any{"name": "Rent"}},
		{http.MethodGet, goal.Links.Self, ""},
		{http.MethodPatch, goal.Links.Self, map[string]any{"name": "Rent"}},
		{http.MethodDelete, goal.Links.Self, ""},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.url), func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
