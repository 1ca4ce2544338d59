package api

import (
	"net/http"

	reqdto "sncleaning-pricing/internal/handler/dto/request"
	resdto "sncleaning-pricing/internal/handler/dto/response"
	"sncleaning-pricing/internal/handler/httperr"
	"sncleaning-pricing/internal/usecase/commands"
	"sncleaning-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OverrideHandler struct {
	cmds commands.OverrideCommands
	q    queries.RuleQueries
}

func NewOverrideHandler(cmds commands.OverrideCommands, q queries.RuleQueries) *OverrideHandler {
	return &OverrideHandler{cmds: cmds, q: q}
}

// @Summary List pricing overrides
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param customerId query string false "Customer ID"
// @Success 200 {array} resdto.OverrideResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/overrides [get]
func (h *OverrideHandler) List(c *gin.Context) {
	var query reqdto.ListOverridesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	customerID, err := query.Customer()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer id", nil)
		return
	}

	items, err := h.q.ListOverrides(c.Request.Context(), customerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverrides(items))
}

// @Summary Create pricing override
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.OverrideRequest true "Override"
// @Success 201 {object} resdto.OverrideResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/overrides [post]
func (h *OverrideHandler) Create(c *gin.Context) {
	var req reqdto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	o, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Header("Location", "/api/admin/overrides/"+o.ID().String())
	c.JSON(http.StatusCreated, resdto.FromOverride(o))
}

// @Summary Update pricing override
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Override ID"
// @Param request body reqdto.OverrideRequest true "Override"
// @Success 200 {object} resdto.OverrideResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/overrides/{id} [put]
func (h *OverrideHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.OverrideRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	o, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOverride(o))
}

// @Summary Delete pricing override
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Override ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/overrides/{id} [delete]
func (h *OverrideHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
