package api

import (
	"net/http"

	reqdto "sncleaning-pricing/internal/handler/dto/request"
	resdto "sncleaning-pricing/internal/handler/dto/response"
	"sncleaning-pricing/internal/handler/httperr"
	"sncleaning-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	quotes queries.QuoteQueries
	rates  queries.RateQueries
}

func NewQuoteHandler(quotes queries.QuoteQueries, rates queries.RateQueries) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, rates: rates}
}

// @Summary Evaluate a booking quote
// @Description Check whether a slot is bookable and price it with the active scheduling rules and the customer's rate override
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	q, err := req.ToQuery()
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	result, err := h.quotes.Evaluate(c.Request.Context(), q)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromQuote(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Resolve a customer's hourly rate
// @Description Apply the most specific pricing override of the customer to the base rate
// @Tags quotes
// @Produce json
// @Param id path string true "Customer ID"
// @Param serviceType query string true "Service type"
// @Param cleaningType query string false "Cleaning type"
// @Param baseRate query string true "Base hourly rate"
// @Success 200 {object} resdto.RateResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /customers/{id}/rate [get]
func (h *QuoteHandler) ResolveRate(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid customer id", nil)
		return
	}
	var query reqdto.RateQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	req, err := query.ToQuery(customerID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	resolution, err := h.rates.ResolveRate(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResolution(customerID, resolution))
}
