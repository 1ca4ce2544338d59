package converter

import (
	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/infra/query"
	"sncleaning-pricing/internal/pkg/pgconv"
)

func OverrideFromRow(row query.PricingOverride) (*override.PricingOverride, error) {
	rate, err := pgconv.DecimalFromText(row.OverrideRate)
	if err != nil {
		return nil, err
	}
	return override.Reconstruct(
		row.ID,
		row.CustomerID,
		row.ServiceType,
		pgconv.StringPtrFromPgtype(row.CleaningType),
		rate,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func OverrideToCreateParams(o *override.PricingOverride) query.CreatePricingOverrideParams {
	return query.CreatePricingOverrideParams{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		ServiceType:  o.ServiceType(),
		CleaningType: pgconv.StringPtrToPgtype(o.CleaningType()),
		OverrideRate: o.OverrideRate().String(),
		CreatedAt:    pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OverrideToUpdateParams(o *override.PricingOverride) query.UpdatePricingOverrideParams {
	return query.UpdatePricingOverrideParams{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		ServiceType:  o.ServiceType(),
		CleaningType: pgconv.StringPtrToPgtype(o.CleaningType()),
		OverrideRate: o.OverrideRate().String(),
		UpdatedAt:    pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}
