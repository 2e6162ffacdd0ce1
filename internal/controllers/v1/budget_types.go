package v1

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/household-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Category string          `json:"category" example:"Food" default:""`          // Category the cap applies to
	Amount   decimal.Decimal `json:"amount" example:"200" swaggertype:"number"`   // The monthly cap
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Amount:   editable.Amount,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/3b1ea324-d438-4419-882a-2fc91d71772f"`     // The budget itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=Food"`                       // Expenses for the budgeted category
}

type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	apiURL := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category: model.Category,
			Amount:   model.Amount,
		},
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", apiURL, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", apiURL, url.QueryEscape(model.Category)),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (b *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Category string `form:"category" filterField:"false"` // By category, "*" wildcards are supported
	Offset   uint   `form:"offset" filterField:"false"`   // The offset of the first budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of budgets to return. Defaults to 50.
}
