package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/household-ledger/backend/internal/httputil"
	"github.com/household-ledger/backend/internal/importer"
	"github.com/household-ledger/backend/internal/importer/parser/ledgercsv"
	"github.com/household-ledger/backend/internal/models"
)

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.POST("", ImportExpenses)
	}
}

// ImportResponse is the import result.
type ImportResponse struct {
	Data  *ImportResult `json:"data"`  // The import result
	Error *string       `json:"error"` // The error, if any occurred
}

type ImportResult struct {
	Count    int       `json:"count" example:"12"` // Number of expenses created
	Expenses []Expense `json:"expenses"`           // The created expenses
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import expenses
// @Description	Creates expenses from a CSV file. Rows always get fresh IDs, existing expenses are never overwritten.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Router			/v1/import [post]
func ImportExpenses(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	expenses, err := ledgercsv.Parse(f)
	if err != nil {
		// ledgercsv.Parse returns a usable error already, no parsing necessary
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	expenses, err = importer.Create(models.DB, expenses)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	result := ImportResult{
		Count:    len(data),
		Expenses: data,
	}
	c.JSON(http.StatusCreated, ImportResponse{Data: &result})
}
