package request

import (
	"strings"
	"time"

	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidDate     = errs.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidBaseRate = errs.New("base rate must be a decimal number")
)

type QuoteRequest struct {
	CustomerID     *uuid.UUID       `json:"customerId,omitempty"`
	ServiceType    string           `json:"serviceType" binding:"required"`
	CleaningType   *string          `json:"cleaningType,omitempty"`
	Date           string           `json:"date" binding:"required"`
	StartTime      string           `json:"startTime" binding:"required"`
	DurationHours  *decimal.Decimal `json:"durationHours" binding:"required"`
	BaseHourlyRate *decimal.Decimal `json:"baseHourlyRate" binding:"required"`
}

func (r *QuoteRequest) ToQuery() (queries.QuoteRequest, error) {
	date, err := time.Parse(DateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return queries.QuoteRequest{}, errs.Mark(err, ErrInvalidDate)
	}
	start, err := rule.ParseClockTime(r.StartTime)
	if err != nil {
		return queries.QuoteRequest{}, err
	}

	q := queries.QuoteRequest{
		ServiceType:    r.ServiceType,
		CleaningType:   r.CleaningType,
		Date:           date,
		StartTime:      start,
		DurationHours:  *r.DurationHours,
		BaseHourlyRate: *r.BaseHourlyRate,
	}
	if r.CustomerID != nil {
		q.CustomerID = *r.CustomerID
	}
	return q, nil
}

// RateQuery is the query string of the rate lookup; the customer comes from
// the path.
type RateQuery struct {
	ServiceType  string `form:"serviceType" binding:"required"`
	CleaningType string `form:"cleaningType"`
	BaseRate     string `form:"baseRate" binding:"required"`
}

func (r *RateQuery) ToQuery(customerID uuid.UUID) (queries.RateRequest, error) {
	base, err := decimal.NewFromString(strings.TrimSpace(r.BaseRate))
	if err != nil {
		return queries.RateRequest{}, errs.Mark(err, ErrInvalidBaseRate)
	}
	q := queries.RateRequest{
		CustomerID:  customerID,
		ServiceType: r.ServiceType,
		BaseRate:    base,
	}
	if ct := strings.TrimSpace(r.CleaningType); ct != "" {
		q.CleaningType = &ct
	}
	return q, nil
}
