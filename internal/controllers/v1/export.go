package v1

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/household-ledger/backend/internal/httputil"
	"github.com/household-ledger/backend/internal/importer/parser/ledgercsv"
	"github.com/household-ledger/backend/internal/models"
)

var backendVersion string

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("", OptionsExport)
		r.GET("", GetExport)
	}

	{
		r.OPTIONS("/all", OptionsExportAll)
		r.GET("/all", GetExportAll)
	}
}

type ExportAllResponse struct {
	Version      string                     `json:"version"`      // The version of the backend the export was made with
	Data         map[string]json.RawMessage `json:"data"`         // The exported data
	CreationTime time.Time                  `json:"creationTime"` // Time the export was created
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/all [options]
func OptionsExportAll(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export expenses
// @Description	Exports all expenses as CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	var expenses []models.Expense
	err := models.DB.Order("date ASC").Find(&expenses).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var sb strings.Builder
	err = ledgercsv.Serialize(&sb, expenses)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(sb.String()))
}

// @Summary		Export everything
// @Description	Exports all resources for the instance
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportAllResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export/all [get]
func GetExportAll(c *gin.Context) {
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, ExportAllResponse{
		Version:      backendVersion,
		Data:         resources,
		CreationTime: time.Now(),
	})
}
