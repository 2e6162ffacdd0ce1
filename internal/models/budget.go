package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget is a monthly spending cap for a single expense category.
//
// Budgets and expenses are only loosely joined: the category string is
// the join key and matching is exact. There is no foreign key, a budget
// can exist without expenses and vice versa.
type Budget struct {
	DefaultModel
	Category string          `json:"category" example:"Food"`                       // The category the cap applies to
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"200"` // The monthly cap
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if b.Category == "" {
		return ErrBudgetCategoryEmpty
	}

	if b.Amount.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// Returns all budgets on this instance for export
func (Budget) Export() (json.RawMessage, error) {
	var budgets []Budget
	err := DB.Unscoped().Where(&Budget{}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
