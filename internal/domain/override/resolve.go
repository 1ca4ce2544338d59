package override

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Resolution is the effective hourly rate for one customer, service and
// cleaning type.
type Resolution struct {
	Rate       decimal.Decimal
	Applied    bool
	OverrideID *uuid.UUID
	Delta      decimal.Decimal
}

// BaseResolution is the result when no override applies. The base rate is
// passed through as given.
func BaseResolution(base decimal.Decimal) Resolution {
	return Resolution{Rate: base, Delta: decimal.Zero}
}

// Select picks the override for the requested service and cleaning type.
// An exact cleaning-type match beats a service-wide one. When the store holds
// several candidates of equal specificity the first in slice order wins.
func Select(overrides []*PricingOverride, serviceType string, cleaningType *string) *PricingOverride {
	ct := normalizeCleaningType(cleaningType)

	var serviceWide *PricingOverride
	for _, o := range overrides {
		if o == nil || o.serviceType != serviceType {
			continue
		}
		if o.cleaningType == nil {
			if serviceWide == nil {
				serviceWide = o
			}
			continue
		}
		if ct != nil && *o.cleaningType == *ct {
			return o
		}
	}
	return serviceWide
}

// Resolve applies the selected override to base. The result never goes
// below zero.
func Resolve(base decimal.Decimal, overrides []*PricingOverride, serviceType string, cleaningType *string) Resolution {
	o := Select(overrides, serviceType, cleaningType)
	if o == nil {
		return BaseResolution(base)
	}
	id := o.id
	return Resolution{
		Rate:       clampRate(base.Add(o.overrideRate)),
		Applied:    true,
		OverrideID: &id,
		Delta:      o.overrideRate,
	}
}

func clampRate(r decimal.Decimal) decimal.Decimal {
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}
