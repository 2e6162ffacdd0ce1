package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/household-ledger/backend/internal/httputil"
	"github.com/household-ledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterPotRoutes registers the routes for pots with
// the RouterGroup that is passed.
func RegisterPotRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPotList)
		r.GET("", GetPots)
		r.POST("", CreatePots)
	}

	// Pot with ID
	{
		r.OPTIONS("/:id", OptionsPotDetail)
		r.GET("/:id", GetPot)
		r.PATCH("/:id", UpdatePot)
		r.DELETE("/:id", DeletePot)
	}

	// Balance
	{
		r.OPTIONS("/:id/balance", OptionsPotBalance)
		r.POST("/:id/balance", AddPotBalance)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pots
// @Success		204
// @Router			/v1/pots [options]
func OptionsPotList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pots
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pots/{id} [options]
func OptionsPotDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Pot{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Pots
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pots/{id}/balance [options]
func OptionsPotBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var pot models.Pot
	err = models.DB.First(&pot, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create pot
// @Description	Creates a new savings pot
// @Tags			Pots
// @Produce		json
// @Success		201		{object}	PotCreateResponse
// @Failure		400		{object}	PotCreateResponse
// @Failure		500		{object}	PotCreateResponse
// @Param			pots	body		[]PotEditable	true	"Pots"
// @Router			/v1/pots [post]
func CreatePots(c *gin.Context) {
	var editables []PotEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PotCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PotCreateResponse{}

	for _, editable := range editables {
		pot := editable.model()

		err = models.DB.Create(&pot).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPot(c, pot)
		r.Data = append(r.Data, PotResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get pots
// @Description	Returns a list of pots
// @Tags			Pots
// @Produce		json
// @Success		200	{object}	PotListResponse
// @Failure		400	{object}	PotListResponse
// @Failure		500	{object}	PotListResponse
// @Router			/v1/pots [get]
// @Param			name	query	string	false	"Filter by name, '*' wildcards are supported"
// @Param			offset	query	uint	false	"The offset of the first pot returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of pots to return. Defaults to 50."
func GetPots(c *gin.Context) {
	var filter PotQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Offset(int(filter.Offset))

	// Default to 50 pots and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var pots []models.Pot
	err := q.Find(&pots).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PotListResponse{
			Error: &e,
		})
		return
	}

	pots = filterCategories(pots, filter.Name, func(p models.Pot) string { return p.Name })

	data := make([]Pot, 0, len(pots))
	for _, pot := range pots {
		data = append(data, newPot(c, pot))
	}

	c.JSON(http.StatusOK, PotListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get pot
// @Description	Returns a specific pot
// @Tags			Pots
// @Produce		json
// @Success		200	{object}	PotResponse
// @Failure		400	{object}	PotResponse
// @Failure		404	{object}	PotResponse
// @Failure		500	{object}	PotResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pots/{id} [get]
func GetPot(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	var pot models.Pot
	err = models.DB.First(&pot, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	data := newPot(c, pot)
	c.JSON(http.StatusOK, PotResponse{Data: &data})
}

// @Summary		Update pot
// @Description	Update an existing pot. Only values to be updated need to be specified.
// @Tags			Pots
// @Accept			json
// @Produce		json
// @Success		200	{object}	PotResponse
// @Failure		400	{object}	PotResponse
// @Failure		404	{object}	PotResponse
// @Failure		500	{object}	PotResponse
// @Param			id	path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			pot	body		PotEditable	true	"Pot"
// @Router			/v1/pots/{id} [patch]
func UpdatePot(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	var pot models.Pot
	err = models.DB.First(&pot, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PotEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	var data PotEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&pot).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	r := newPot(c, pot)
	c.JSON(http.StatusOK, PotResponse{Data: &r})
}

// @Summary		Add to pot
// @Description	Adds a positive amount to the pot's saved balance
// @Tags			Pots
// @Accept			json
// @Produce		json
// @Success		200		{object}	PotResponse
// @Failure		400		{object}	PotResponse
// @Failure		404		{object}	PotResponse
// @Failure		500		{object}	PotResponse
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			balance	body		PotBalance	true	"Amount to add"
// @Router			/v1/pots/{id}/balance [post]
func AddPotBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	var pot models.Pot
	err = models.DB.First(&pot, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	var balance PotBalance
	err = httputil.BindData(c, &balance)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	err = pot.AddBalance(models.DB, balance.Amount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PotResponse{
			Error: &s,
		})
		return
	}

	data := newPot(c, pot)
	c.JSON(http.StatusOK, PotResponse{Data: &data})
}

// @Summary		Delete pot
// @Description	Deletes a pot
// @Tags			Pots
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/pots/{id} [delete]
func DeletePot(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var pot models.Pot
	err = models.DB.First(&pot, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&pot).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
