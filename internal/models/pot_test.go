package models_test

import (
	"strings"
	"testing"

	"github.com/household-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestPotAfterSave() {
	tests := []struct {
		name   string
		target decimal.Decimal
		err    error
	}{
		{"Holiday", decimal.NewFromFloat(1000), nil},
		{"", decimal.NewFromFloat(1000), models.ErrPotNameEmpty},
		{"Holiday", decimal.NewFromFloat(-1), models.ErrPotTargetNegative},
	}

	for _, tt := range tests {
		p := models.Pot{
			Name:   tt.name,
			Target: tt.target,
		}

		err := p.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestPotTrimWhitespace() {
	name := "  Emergency fund \t"

	pot := suite.createTestPot(models.Pot{
		Name:   name,
		Target: decimal.NewFromFloat(500),
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), pot.Name)
}

func (suite *TestSuiteStandard) TestPotAddBalance() {
	pot := suite.createTestPot(models.Pot{
		Name:   "Holiday",
		Target: decimal.NewFromFloat(100),
	})

	require.Nil(suite.T(), pot.AddBalance(models.DB, decimal.NewFromFloat(50)))
	require.Nil(suite.T(), pot.AddBalance(models.DB, decimal.NewFromFloat(75)))

	var reread models.Pot
	require.Nil(suite.T(), models.DB.First(&reread, pot.ID).Error)

	// Over-saving is allowed, the stored total is never clamped
	assert.True(suite.T(), reread.Saved.Equal(decimal.NewFromFloat(125)), "saved is %s, should be 125", reread.Saved)
	assert.Equal(suite.T(), int64(100), reread.Percentage())
}

func (suite *TestSuiteStandard) TestPotAddBalanceNegative() {
	pot := suite.createTestPot(models.Pot{
		Name:   "Holiday",
		Target: decimal.NewFromFloat(100),
	})

	err := pot.AddBalance(models.DB, decimal.NewFromFloat(-10))
	assert.Equal(suite.T(), models.ErrPotAdditionNegative, err)

	var reread models.Pot
	require.Nil(suite.T(), models.DB.First(&reread, pot.ID).Error)
	assert.True(suite.T(), reread.Saved.IsZero(), "saved is %s, should be unchanged", reread.Saved)
}

func (suite *TestSuiteStandard) TestPotPercentage() {
	tests := []struct {
		name   string
		target decimal.Decimal
		saved  decimal.Decimal
		want   int64
	}{
		{"partial", decimal.NewFromFloat(1000), decimal.NewFromFloat(741.23), 74},
		{"rounding", decimal.NewFromFloat(200), decimal.NewFromFloat(80), 40},
		{"over target", decimal.NewFromFloat(100), decimal.NewFromFloat(125), 100},
		{"zero target", decimal.Zero, decimal.NewFromFloat(50), 0},
		{"negative saved", decimal.NewFromFloat(100), decimal.NewFromFloat(-10), 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			p := models.Pot{Target: tt.target, Saved: tt.saved}
			assert.Equal(t, tt.want, p.Percentage())
		})
	}
}
