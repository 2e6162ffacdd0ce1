package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/household-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// PotEditable represents all user configurable parameters
type PotEditable struct {
	Name   string          `json:"name" example:"Holiday" default:""`           // Name of the pot
	Target decimal.Decimal `json:"target" example:"1000" swaggertype:"number"`  // The savings goal
	Saved  decimal.Decimal `json:"saved" example:"741.23" swaggertype:"number"` // The amount saved so far
}

func (editable PotEditable) model() models.Pot {
	return models.Pot{
		Name:   editable.Name,
		Target: editable.Target,
		Saved:  editable.Saved,
	}
}

// PotBalance is the request body for adding money to a pot.
type PotBalance struct {
	Amount decimal.Decimal `json:"amount" example:"50" swaggertype:"number"` // The amount to add
}

type PotLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/pots/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9"`            // The pot itself
	Balance string `json:"balance" example:"https://example.com/api/v1/pots/af892e10-7e0a-4fb8-b1bc-4b6d88401ed9/balance"` // Endpoint to add to the pot
}

type Pot struct {
	models.DefaultModel
	PotEditable
	Links PotLinks `json:"links"`

	// These fields are computed
	Percentage int64 `json:"percentage" example:"74"` // Reached part of the target, clamped to [0, 100] for display
}

func newPot(c *gin.Context, model models.Pot) Pot {
	apiURL := c.GetString(string(models.DBContextURL))

	return Pot{
		DefaultModel: model.DefaultModel,
		PotEditable: PotEditable{
			Name:   model.Name,
			Target: model.Target,
			Saved:  model.Saved,
		},
		Links: PotLinks{
			Self:    fmt.Sprintf("%s/v1/pots/%s", apiURL, model.ID),
			Balance: fmt.Sprintf("%s/v1/pots/%s/balance", apiURL, model.ID),
		},
		Percentage: model.Percentage(),
	}
}

type PotListResponse struct {
	Data       []Pot       `json:"data"`                                                          // List of pots
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PotCreateResponse struct {
	Data  []PotResponse `json:"data"`                                                          // List of the created pots or their respective error
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (p *PotCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, PotResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PotResponse struct {
	Data  *Pot    `json:"data"`                                                          // Data for the pot
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PotQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first pot returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of pots to return. Defaults to 50.
}
