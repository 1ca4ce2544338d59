package api

import (
	"net/http"

	"sncleaning-pricing/internal/domain/quote"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/handler/dto/request"
	"sncleaning-pricing/internal/handler/httperr"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/usecase/commands"
	"sncleaning-pricing/internal/usecase/queries"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target     error
	status     int
	message    string
	withDetail bool
}

// first match wins
var usecaseErrors = []errorMapping{
	{target: shared.ErrRuleStoreUnavailable, status: http.StatusServiceUnavailable, message: "Pricing is temporarily unavailable, please try again"},
	{target: shared.ErrReadOnlyStore, status: http.StatusConflict, message: "Rules are served from a read-only snapshot"},
	{target: commands.ErrRuleNotFound, status: http.StatusNotFound, message: "Scheduling rule not found"},
	{target: commands.ErrOverrideNotFound, status: http.StatusNotFound, message: "Pricing override not found"},
	{target: commands.ErrOverrideConflict, status: http.StatusConflict, message: "Override already exists for this customer, service and cleaning type"},
	{target: commands.ErrInvalidRule, status: http.StatusUnprocessableEntity, message: "Invalid scheduling rule", withDetail: true},
	{target: commands.ErrInvalidOverride, status: http.StatusUnprocessableEntity, message: "Invalid pricing override", withDetail: true},
	{target: commands.ErrInvalidReorder, status: http.StatusBadRequest, message: "Invalid request", withDetail: true},
	{target: quote.ErrInvalidDuration, status: http.StatusBadRequest, message: "Duration must be greater than zero"},
	{target: queries.ErrServiceTypeRequired, status: http.StatusBadRequest, message: "Service type is required"},
	{target: request.ErrInvalidDate, status: http.StatusBadRequest, message: "Invalid request", withDetail: true},
	{target: request.ErrInvalidBaseRate, status: http.StatusBadRequest, message: "Invalid request", withDetail: true},
	{target: rule.ErrInvalidClockTime, status: http.StatusBadRequest, message: "Invalid request", withDetail: true},
	{target: rule.ErrUnknownRuleType, status: http.StatusBadRequest, message: "Invalid request", withDetail: true},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range usecaseErrors {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		if m.withDetail {
			detail = err.Error()
		}
		httperr.AbortWithError(c, m.status, err, m.message, detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}
