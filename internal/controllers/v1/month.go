package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/household-ledger/backend/internal/httputil"
	"github.com/household-ledger/backend/internal/models"
	"github.com/household-ledger/backend/internal/types"
)

// RegisterMonthRoutes registers the routes for months with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
	}
}

// MonthResponse wraps the spend-vs-budget data for one month.
type MonthResponse struct {
	Data  *Month  `json:"data"`  // Data for the month
	Error *string `json:"error"` // The error, if any occurred
}

type Month struct {
	Month      types.Month              `json:"month" example:"2024-03"` // The month the summary was computed for
	Categories []models.CategorySummary `json:"categories"`              // One entry per budget, ordered by category
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get monthly summary
// @Description	Returns the spend-vs-budget summary for every budget in the given month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil || query.Month == "" {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	categories, err := models.MonthlySummary(month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := Month{
		Month:      month,
		Categories: categories,
	}
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}
