package override

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PricingOverride is a per-customer delta, in pounds per hour, on the base
// rate of a service. A nil cleaning type applies to every cleaning type of
// the service.
type PricingOverride struct {
	id           uuid.UUID
	customerID   uuid.UUID
	serviceType  string
	cleaningType *string
	overrideRate decimal.Decimal
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPricingOverride(id, customerID uuid.UUID, serviceType string, cleaningType *string, rate decimal.Decimal, now time.Time) (*PricingOverride, error) {
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	st := strings.TrimSpace(serviceType)
	if st == "" {
		return nil, ErrEmptyServiceType
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &PricingOverride{
		id:           id,
		customerID:   customerID,
		serviceType:  st,
		cleaningType: normalizeCleaningType(cleaningType),
		overrideRate: rate,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds an override from storage without validation.
func Reconstruct(id, customerID uuid.UUID, serviceType string, cleaningType *string, rate decimal.Decimal, createdAt, updatedAt time.Time) *PricingOverride {
	return &PricingOverride{
		id:           id,
		customerID:   customerID,
		serviceType:  serviceType,
		cleaningType: normalizeCleaningType(cleaningType),
		overrideRate: rate,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *PricingOverride) ID() uuid.UUID                 { return o.id }
func (o *PricingOverride) CustomerID() uuid.UUID         { return o.customerID }
func (o *PricingOverride) ServiceType() string           { return o.serviceType }
func (o *PricingOverride) CleaningType() *string         { return o.cleaningType }
func (o *PricingOverride) OverrideRate() decimal.Decimal { return o.overrideRate }
func (o *PricingOverride) CreatedAt() time.Time          { return o.createdAt }
func (o *PricingOverride) UpdatedAt() time.Time          { return o.updatedAt }

// IsServiceWide reports whether the override applies to all cleaning types.
func (o *PricingOverride) IsServiceWide() bool { return o.cleaningType == nil }

func normalizeCleaningType(ct *string) *string {
	if ct == nil {
		return nil
	}
	v := strings.TrimSpace(*ct)
	if v == "" {
		return nil
	}
	return &v
}
