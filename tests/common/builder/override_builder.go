//go:build unit || e2e

package builder

import (
	"time"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OverrideBuilder struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	ServiceType  string
	CleaningType *string
	OverrideRate decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewOverrideBuilder() *OverrideBuilder {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &OverrideBuilder{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		ServiceType:  "domestic",
		OverrideRate: decimal.NewFromInt(-3),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *OverrideBuilder) With(mutate func(*OverrideBuilder)) *OverrideBuilder {
	mutate(b)
	return b
}

func (b *OverrideBuilder) WithCustomer(id uuid.UUID) *OverrideBuilder {
	b.CustomerID = id
	return b
}

func (b *OverrideBuilder) WithService(serviceType string) *OverrideBuilder {
	b.ServiceType = serviceType
	return b
}

func (b *OverrideBuilder) WithCleaningType(cleaningType string) *OverrideBuilder {
	b.CleaningType = ptr.Of(cleaningType)
	return b
}

func (b *OverrideBuilder) WithRate(rate string) *OverrideBuilder {
	b.OverrideRate = decimal.RequireFromString(rate)
	return b
}

func (b *OverrideBuilder) BuildDomain() (*override.PricingOverride, error) {
	return override.NewPricingOverride(b.ID, b.CustomerID, b.ServiceType, b.CleaningType, b.OverrideRate, b.CreatedAt)
}

func (b *OverrideBuilder) MustBuildDomain() *override.PricingOverride {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return o
}
