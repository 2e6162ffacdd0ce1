package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/household-ledger/backend/internal/controllers/v1"
	"github.com/household-ledger/backend/internal/models"
	"github.com/household-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpensesCreate() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:  "Weekly groceries",
		Amount: decimal.NewFromFloat(41.77),
	})

	require.NotNil(suite.T(), expense.Data)
	assert.Equal(suite.T(), "Weekly groceries", expense.Data.Title)
	assert.Equal(suite.T(), models.DefaultCategory, expense.Data.Category, "category must default")
	assert.False(suite.T(), expense.Data.Date.IsZero(), "date must default to the current instant")
	assert.False(suite.T(), expense.Data.External, "expenses created via the API are not external")
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalid() {
	r := suite.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{{
		Amount: decimal.NewFromFloat(10),
	}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), models.ErrExpenseTitleEmpty.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	march := time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC)

	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Title: "Groceries", Date: march, Category: "Food", Amount: decimal.NewFromFloat(50)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Title: "Takeout", Date: march, Category: "Food", Note: "Pizza night", Amount: decimal.NewFromFloat(30)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Title: "April groceries", Date: april, Category: "Food", Amount: decimal.NewFromFloat(42)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Title: "Bus ticket", Date: march, Category: "Transport", Amount: decimal.NewFromFloat(2.80)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 4},
		{"Month", "month=2024-03", 3},
		{"Other month", "month=2024-05", 0},
		{"Category", "category=Food", 3},
		{"Month and category", "month=2024-03&category=Food", 2},
		{"Category wildcard", "category=*ort", 1},
		{"Title", "title=groceries", 2},
		{"Search note", "search=pizza", 1},
		{"Limit", "limit=3", 3},
		{"Offset", "offset=3", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetInvalidMonth() {
	r := suite.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=March", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	e := suite.createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing expense", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No expense with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")

			var expense v1.ExpenseResponse
			test.DecodeResponse(t, &r, &expense)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:  "Weekly groceries",
		Amount: decimal.NewFromFloat(41.77),
	})

	r := suite.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"note": "Includes the birthday cake",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Weekly groceries", updated.Data.Title, "the title must be unchanged")
	assert.Equal(suite.T(), "Includes the birthday cake", updated.Data.Note)
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := suite.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = suite.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesPendingUndoEmpty() {
	r := suite.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/pending-undo", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PendingUndoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestExpensesPendingUndo() {
	ingested, err := suite.service.Ingest(models.Expense{
		Title:  "Shampoo",
		Amount: decimal.NewFromFloat(4.99),
	})
	require.Nil(suite.T(), err)

	r := suite.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/pending-undo", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PendingUndoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), ingested.ID, response.Data.Expense.ID)
	assert.True(suite.T(), response.Data.Expense.External)
	assert.False(suite.T(), response.Data.ExpiresAt.IsZero())
}

func (suite *TestSuiteStandard) TestExpensesUndo() {
	ingested, err := suite.service.Ingest(models.Expense{
		Title:  "Shampoo",
		Amount: decimal.NewFromFloat(4.99),
	})
	require.Nil(suite.T(), err)

	r := suite.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s/undo", ingested.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The expense is gone
	r = suite.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%s", ingested.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// A second undo is a conflict
	r = suite.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s/undo", ingested.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestExpensesUndoNotPending() {
	// An expense created via the API never has an undo window
	expense := suite.createTestExpense(suite.T(), v1.ExpenseEditable{})

	r := suite.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s/undo", expense.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	// The expense itself is untouched
	r = suite.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
