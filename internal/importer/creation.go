// Package importer creates parsed resources in the database.
package importer

import (
	"github.com/household-ledger/backend/internal/models"
	"gorm.io/gorm"
)

// Create persists all parsed expenses.
//
// Everything happens in one transaction so that a failing row rolls back
// the whole import. The returned slice contains the created expenses
// with their minted IDs.
func Create(db *gorm.DB, expenses []models.Expense) ([]models.Expense, error) {
	// Start a transaction so we can roll back all created resources if an error occurs
	tx := db.Begin()

	for idx, expense := range expenses {
		err := tx.Create(&expense).Error
		if err != nil {
			tx.Rollback()
			return nil, err
		}

		// Update the expense in the slice so that it also contains the ID
		expenses[idx] = expense
	}

	err := tx.Commit().Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}
