package models_test

import (
	"strings"

	"github.com/household-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetAfterSave() {
	tests := []struct {
		category string
		amount   decimal.Decimal
		err      error
	}{
		{"Food", decimal.NewFromFloat(200), nil},
		{"", decimal.NewFromFloat(200), models.ErrBudgetCategoryEmpty},
		{"Food", decimal.NewFromFloat(-10), models.ErrBudgetAmountNegative},
		{"Food", decimal.Zero, nil},
	}

	for _, tt := range tests {
		b := models.Budget{
			Category: tt.category,
			Amount:   tt.amount,
		}

		err := b.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	category := "  Groceries \t"

	budget := suite.createTestBudget(models.Budget{
		Category: category,
		Amount:   decimal.NewFromFloat(150),
	})

	assert.Equal(suite.T(), strings.TrimSpace(category), budget.Category)
}

func (suite *TestSuiteStandard) TestBudgetCategoriesNotUnique() {
	// Two budgets for the same category are allowed, the summary lists
	// them both
	_ = suite.createTestBudget(models.Budget{Category: "Food", Amount: decimal.NewFromFloat(200)})
	_ = suite.createTestBudget(models.Budget{Category: "Food", Amount: decimal.NewFromFloat(50)})

	var count int64
	err := models.DB.Model(&models.Budget{}).Where("category = ?", "Food").Count(&count).Error
	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestBudgetExport() {
	_ = suite.createTestBudget(models.Budget{Category: "Food", Amount: decimal.NewFromFloat(200)})

	raw, err := models.Budget{}.Export()
	assert.Nil(suite.T(), err)
	assert.Contains(suite.T(), string(raw), "Food")
}
