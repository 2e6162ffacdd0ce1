package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCategory is assigned to expenses that are recorded without a
// category.
const DefaultCategory = "Uncategorized"

// Expense is a single recorded outlay.
//
// The amount deliberately has no sign constraint, refunds are recorded
// as negative expenses.
type Expense struct {
	DefaultModel
	Title    string          `json:"title" example:"Weekly groceries"`                      // Description of the outlay
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"41.77"`      // The amount spent
	Date     time.Time       `json:"date" example:"2024-03-08T00:00:00Z"`                   // Time the expense occurred
	Category string          `json:"category" example:"Food"`                               // Category used to match against budgets
	Note     string          `json:"note,omitempty" example:"Includes the birthday cake"`   // Optional annotation
	External bool            `json:"external" example:"false"`                              // True when the expense was ingested from another feature
}

// BeforeSave normalizes the expense. Dates are stored in UTC and default
// to the current instant, empty categories fall back to DefaultCategory.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Note = strings.TrimSpace(e.Note)

	e.Category = strings.TrimSpace(e.Category)
	if e.Category == "" {
		e.Category = DefaultCategory
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Title == "" {
		return ErrExpenseTitleEmpty
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, see
// DefaultModel.AfterFind.
func (e *Expense) AfterFind(_ *gorm.DB) (err error) {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// Returns all expenses on this instance for export
func (Expense) Export() (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Unscoped().Where(&Expense{}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}

// ExpensesSum returns the sum of all expense amounts for a category in
// the half-open interval [from, until).
func ExpensesSum(category string, from, until time.Time) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("expenses").
		Select("SUM(amount)").
		Where("category = ?", category).
		Where("date >= ? AND date < ?", from, until).
		Where("deleted_at IS NULL").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	return sum.Decimal, nil
}
