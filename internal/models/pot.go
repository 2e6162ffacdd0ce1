package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pot is a savings goal with a target amount and a running total.
//
// The running total only grows through AddBalance or is replaced
// wholesale on edit. Over-saving is allowed, the total may exceed the
// target.
type Pot struct {
	DefaultModel
	Name   string          `json:"name" example:"Holiday"`                           // Name of the pot
	Target decimal.Decimal `json:"target" gorm:"type:DECIMAL(20,8)" example:"1000"`  // The savings goal
	Saved  decimal.Decimal `json:"saved" gorm:"type:DECIMAL(20,8)" example:"741.23"` // The amount saved so far
}

func (p *Pot) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	return nil
}

func (p *Pot) AfterSave(_ *gorm.DB) error {
	if p.Name == "" {
		return ErrPotNameEmpty
	}

	if p.Target.IsNegative() {
		return ErrPotTargetNegative
	}

	return nil
}

// AddBalance adds the amount to the running total of the pot. It is
// pure addition, there is no upper bound: a pot can hold more than its
// target.
func (p *Pot) AddBalance(db *gorm.DB, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrPotAdditionNegative
	}

	return db.Model(p).Update("saved", p.Saved.Add(amount)).Error
}

// Percentage returns how much of the target is reached, clamped to
// [0, 100] for display. The stored total is never clamped.
func (p Pot) Percentage() int64 {
	if !p.Target.IsPositive() {
		return 0
	}

	pct := p.Saved.Div(p.Target).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}

	return pct
}

// Returns all pots on this instance for export
func (Pot) Export() (json.RawMessage, error) {
	var pots []Pot
	err := DB.Unscoped().Where(&Pot{}).Find(&pots).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&pots)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
