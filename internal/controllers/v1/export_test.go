package v1_test

import (
	"net/http"
	"strings"
	"time"

	v1 "github.com/household-ledger/backend/internal/controllers/v1"
	"github.com/household-ledger/backend/internal/importer/parser/ledgercsv"
	"github.com/household-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportCSV() {
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:    "Weekly \"special\" groceries",
		Amount:   decimal.NewFromFloat(41.77),
		Date:     time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		Category: "Food",
	})

	r := suite.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Equal(suite.T(), "text/csv", r.Header().Get("Content-Type"))

	lines := strings.Split(strings.TrimRight(r.Body.String(), "\n"), "\n")
	require.Len(suite.T(), lines, 2)

	assert.Equal(suite.T(), `"id","title","amount","date","category","note"`, lines[0])

	// Quotes are escaped by doubling
	assert.Contains(suite.T(), lines[1], `"Weekly ""special"" groceries"`)
	assert.Contains(suite.T(), lines[1], `"41.77"`)
	assert.Contains(suite.T(), lines[1], `"2024-03-08T00:00:00Z"`)
}

func (suite *TestSuiteStandard) TestExportCSVEmpty() {
	r := suite.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), ledgercsv.ErrNoExpenses.Error(), response.Error)
}

func (suite *TestSuiteStandard) TestExportRoundTrip() {
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{
		Title:    "Groceries, with a comma",
		Amount:   decimal.NewFromFloat(41.77),
		Date:     time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		Category: "Food",
		Note:     "A \"quoted\" note",
	})

	r := suite.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Importing the export again duplicates the expense with a fresh ID
	body, headers := test.MultipartFile(suite.T(), "export.csv", r.Body.String())

	r = suite.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Expenses, 1)

	imported := response.Data.Expenses[0]
	assert.Equal(suite.T(), "Groceries, with a comma", imported.Title)
	assert.Equal(suite.T(), "A \"quoted\" note", imported.Note)
	assert.True(suite.T(), imported.Amount.Equal(decimal.NewFromFloat(41.77)))
}

func (suite *TestSuiteStandard) TestExportAll() {
	_ = suite.createTestBudget(suite.T(), v1.BudgetEditable{Category: "Food", Amount: decimal.NewFromFloat(200)})
	_ = suite.createTestExpense(suite.T(), v1.ExpenseEditable{Title: "Groceries"})
	_ = suite.createTestPot(suite.T(), v1.PotEditable{Name: "Holiday"})

	r := suite.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/all", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportAllResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.False(suite.T(), response.CreationTime.IsZero())
	for _, key := range []string{"Budget", "Expense", "Pot"} {
		assert.Contains(suite.T(), response.Data, key)
	}
}
