//go:build unit || e2e

package builder

import (
	reqdto "sncleaning-pricing/internal/handler/dto/request"
	"sncleaning-pricing/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteRequestBuilder builds the body of POST /api/quotes.
type QuoteRequestBuilder struct {
	CustomerID     *uuid.UUID
	ServiceType    string
	CleaningType   *string
	Date           string
	StartTime      string
	DurationHours  decimal.Decimal
	BaseHourlyRate decimal.Decimal
}

// NewQuoteRequestBuilder defaults to a three hour domestic clean on a
// Wednesday morning at £20/h.
func NewQuoteRequestBuilder() *QuoteRequestBuilder {
	return &QuoteRequestBuilder{
		ServiceType:    "domestic",
		Date:           "2025-03-05",
		StartTime:      "09:00",
		DurationHours:  decimal.NewFromInt(3),
		BaseHourlyRate: decimal.NewFromInt(20),
	}
}

func (b *QuoteRequestBuilder) WithCustomer(id uuid.UUID) *QuoteRequestBuilder {
	b.CustomerID = &id
	return b
}

func (b *QuoteRequestBuilder) WithService(serviceType string) *QuoteRequestBuilder {
	b.ServiceType = serviceType
	return b
}

func (b *QuoteRequestBuilder) WithCleaningType(cleaningType string) *QuoteRequestBuilder {
	b.CleaningType = ptr.Of(cleaningType)
	return b
}

func (b *QuoteRequestBuilder) WithSlot(date, start, hours string) *QuoteRequestBuilder {
	b.Date = date
	b.StartTime = start
	b.DurationHours = decimal.RequireFromString(hours)
	return b
}

func (b *QuoteRequestBuilder) WithBaseRate(rate string) *QuoteRequestBuilder {
	b.BaseHourlyRate = decimal.RequireFromString(rate)
	return b
}

func (b *QuoteRequestBuilder) BuildRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{
		CustomerID:     b.CustomerID,
		ServiceType:    b.ServiceType,
		CleaningType:   b.CleaningType,
		Date:           b.Date,
		StartTime:      b.StartTime,
		DurationHours:  ptr.Of(b.DurationHours),
		BaseHourlyRate: ptr.Of(b.BaseHourlyRate),
	}
}
