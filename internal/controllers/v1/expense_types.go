package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/household-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Title    string          `json:"title" example:"Weekly groceries" default:""`                  // Description of the outlay
	Amount   decimal.Decimal `json:"amount" example:"41.77" swaggertype:"number"`                  // The amount spent
	Date     time.Time       `json:"date" example:"2024-03-08T00:00:00Z"`                          // Time the expense occurred, defaults to the current instant
	Category string          `json:"category" example:"Food" default:"Uncategorized"`              // Category used to match against budgets
	Note     string          `json:"note" example:"Includes the birthday cake" default:""`         // Optional annotation
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Title:    editable.Title,
		Amount:   editable.Amount,
		Date:     editable.Date,
		Category: editable.Category,
		Note:     editable.Note,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/d430d7c3-d14c-4712-9336-ee56965a6673"` // The expense itself
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	External bool         `json:"external" example:"false"` // True when the expense was ingested from another feature
	Links    ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	apiURL := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Title:    model.Title,
			Amount:   model.Amount,
			Date:     model.Date,
			Category: model.Category,
			Note:     model.Note,
		},
		External: model.External,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", apiURL, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// PendingUndoResponse surfaces the expense that can currently be
// undone.
type PendingUndoResponse struct {
	Data  *PendingUndo `json:"data"`  // The pending undo, null when nothing is undoable
	Error *string      `json:"error"` // The error, if any occurred
}

type PendingUndo struct {
	Expense   Expense   `json:"expense"`   // The undoable expense
	ExpiresAt time.Time `json:"expiresAt"` // When the undo window closes
}

type ExpenseQueryFilter struct {
	Month    string `form:"month" filterField:"false"`    // By month in YYYY-MM format
	Category string `form:"category" filterField:"false"` // By category, "*" wildcards are supported
	Title    string `form:"title" filterField:"false"`    // By title
	Note     string `form:"note" filterField:"false"`     // By note
	Search   string `form:"search" filterField:"false"`   // Search for this text in title and note
	External bool   `form:"external"`                     // Only expenses ingested from other features?
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first expense returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		External: f.External,
	}
}
