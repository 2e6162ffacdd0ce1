package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/household-ledger/backend/internal/controllers/v1"
	"github.com/household-ledger/backend/internal/models"
	"github.com/household-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBudgetsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				suite.createTestBudget(t, v1.BudgetEditable{Category: "Food"}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := suite.Request(t, http.MethodGet, "http://example.com/v1/budgets", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.BudgetListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestBudgetsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetsOptions() {
	tests := []struct {
		name   string
		id     string // path at the budgets endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Budget exists", suite.createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/budgets", tt.id)
			r := suite.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreate() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{
		Category: "Food",
		Amount:   decimal.NewFromFloat(200),
	})

	require.NotNil(suite.T(), budget.Data)
	assert.Equal(suite.T(), "Food", budget.Data.Category)
	assert.True(suite.T(), budget.Data.Amount.Equal(decimal.NewFromFloat(200)))
	assert.NotEqual(suite.T(), uuid.Nil, budget.Data.ID, "an ID must be minted on create")
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalid() {
	tests := []struct {
		name     string
		editable v1.BudgetEditable
		err      string
	}{
		{"Empty category", v1.BudgetEditable{Amount: decimal.NewFromFloat(10)}, models.ErrBudgetCategoryEmpty.Error()},
		{"Negative amount", v1.BudgetEditable{Category: "Food", Amount: decimal.NewFromFloat(-1)}, models.ErrBudgetAmountNegative.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(t, http.MethodPost, "http://example.com/v1/budgets", []v1.BudgetEditable{tt.editable})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.BudgetCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.Equal(t, tt.err, *response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetFilter() {
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "Food"})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "Food & Drink"})
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "Transport"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 3},
		{"Exact category", "category=Food", 1},
		{"Wildcard", "category=Food*", 2},
		{"Case sensitive", "category=food", 0},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.BudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	b := suite.createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing budget", b.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No budget with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")

			var budget v1.BudgetResponse
			test.DecodeResponse(t, &r, &budget)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{
		Category: "Food",
		Amount:   decimal.NewFromFloat(200),
	})

	r := suite.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"amount": 250,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Food", updated.Data.Category, "the category must be unchanged")
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(250)))
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	budget := suite.createTestBudget(suite.T(), v1.BudgetEditable{})

	r := suite.Request(suite.T(), http.MethodDelete, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.Request(suite.T(), http.MethodGet, budget.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
