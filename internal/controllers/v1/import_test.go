package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/household-ledger/backend/internal/controllers/v1"
	"github.com/household-ledger/backend/internal/importer/parser/ledgercsv"
	"github.com/household-ledger/backend/internal/models"
	"github.com/household-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestImport() {
	csv := "\"id\",\"title\",\"amount\",\"date\",\"category\",\"note\"\n" +
		"\"\",\"Groceries\",\"41.77\",\"2024-03-08T00:00:00Z\",\"Food\",\"\"\n" +
		"\"\",\"Bus ticket\",\"2.80\",\"2024-03-09T00:00:00Z\",\"Transport\",\"Day pass\"\n"

	body, headers := test.MultipartFile(suite.T(), "expenses.csv", csv)

	r := suite.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 2, response.Data.Count)
	require.Len(suite.T(), response.Data.Expenses, 2)

	assert.Equal(suite.T(), "Groceries", response.Data.Expenses[0].Title)
	assert.True(suite.T(), response.Data.Expenses[0].Amount.Equal(decimal.NewFromFloat(41.77)))

	// All rows are persisted
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Expense{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestImportDefaults() {
	// Missing fields fall back to defaults instead of rejecting the row
	csv := "\"title\",\"amount\"\n" +
		"\"\",\"not-a-number\"\n"

	body, headers := test.MultipartFile(suite.T(), "expenses.csv", csv)

	r := suite.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	require.Len(suite.T(), response.Data.Expenses, 1)

	expense := response.Data.Expenses[0]
	assert.Equal(suite.T(), ledgercsv.DefaultTitle, expense.Title)
	assert.True(suite.T(), expense.Amount.IsZero())
	assert.Equal(suite.T(), models.DefaultCategory, expense.Category)
	assert.False(suite.T(), expense.Date.IsZero())
}

func (suite *TestSuiteStandard) TestImportFreshIDs() {
	existing := suite.createTestExpense(suite.T(), v1.ExpenseEditable{Title: "Groceries"})

	// The id column is ignored, imported rows never overwrite existing
	// expenses
	csv := "\"id\",\"title\",\"amount\",\"date\",\"category\",\"note\"\n" +
		"\"" + existing.Data.ID.String() + "\",\"Duplicate groceries\",\"10\",\"2024-03-08T00:00:00Z\",\"Food\",\"\"\n"

	body, headers := test.MultipartFile(suite.T(), "expenses.csv", csv)

	r := suite.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data.Expenses, 1)
	assert.NotEqual(suite.T(), existing.Data.ID, response.Data.Expenses[0].ID)

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Expense{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestImportInvalid() {
	tests := []struct {
		name     string
		fileName string
		content  string
	}{
		{"Only a header", "expenses.csv", "\"id\",\"title\",\"amount\",\"date\",\"category\",\"note\"\n"},
		{"Empty file", "expenses.csv", ""},
		{"Wrong file suffix", "expenses.xlsx", "does not matter"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.MultipartFile(t, tt.fileName, tt.content)

			r := suite.Request(t, http.MethodPost, "http://example.com/v1/import", body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	r := suite.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
