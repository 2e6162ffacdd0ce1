package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrBudgetCategoryEmpty  = errors.New("budget categories must not be empty")
	ErrBudgetAmountNegative = errors.New("budget amounts must not be negative")

	ErrExpenseTitleEmpty = errors.New("expense titles must not be empty")

	ErrPotNameEmpty        = errors.New("pot names must not be empty")
	ErrPotTargetNegative   = errors.New("pot targets must not be negative")
	ErrPotAdditionNegative = errors.New("amounts added to a pot must not be negative")
)
