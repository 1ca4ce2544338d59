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

type RuleHandler struct {
	cmds commands.RuleCommands
	q    queries.RuleQueries
}

func NewRuleHandler(cmds commands.RuleCommands, q queries.RuleQueries) *RuleHandler {
	return &RuleHandler{cmds: cmds, q: q}
}

// @Summary List scheduling rules
// @Description List rules of one type, or of every type, in display order
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param type query string false "Rule type"
// @Param activeOnly query bool false "Only active rules"
// @Success 200 {array} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /admin/rules [get]
func (h *RuleHandler) List(c *gin.Context) {
	var query reqdto.ListRulesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ruleType, err := query.RuleType()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	records, err := h.q.ListRules(c.Request.Context(), ruleType, query.ActiveOnly)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromRules(records)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create scheduling rule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RuleRequest true "Rule"
// @Success 201 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/rules [post]
func (h *RuleHandler) Create(c *gin.Context) {
	var req reqdto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rec, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromRule(rec)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.Header("Location", "/api/admin/rules/"+rec.ID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary Update scheduling rule
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Param request body reqdto.RuleRequest true "Rule"
// @Success 200 {object} resdto.RuleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/rules/{id} [put]
func (h *RuleHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RuleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	rec, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromRule(rec)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Delete scheduling rule
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Rule ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rules/{id} [delete]
func (h *RuleHandler) Delete(c *gin.Context) {
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

// @Summary Reorder scheduling rules
// @Description Rewrite display order to the position of each id in the list
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.ReorderRulesRequest true "Rule ids in their new order"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/rules/reorder [post]
func (h *RuleHandler) Reorder(c *gin.Context) {
	var req reqdto.ReorderRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Reorder(c.Request.Context(), req.IDs); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
