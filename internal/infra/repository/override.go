package repository

import (
	"context"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/infra"
	"sncleaning-pricing/internal/infra/converter"
	"sncleaning-pricing/internal/infra/query"
	"sncleaning-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OverrideWriteQueries interface {
	GetPricingOverride(ctx context.Context, db query.DBTX, id uuid.UUID) (query.PricingOverride, error)
	CreatePricingOverride(ctx context.Context, db query.DBTX, arg query.CreatePricingOverrideParams) error
	UpdatePricingOverride(ctx context.Context, db query.DBTX, arg query.UpdatePricingOverrideParams) (int64, error)
	DeletePricingOverride(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type OverrideRepository struct {
	queries OverrideWriteQueries
	db      query.DBTX
}

func NewOverrideRepository(queries OverrideWriteQueries, db query.DBTX) *OverrideRepository {
	return &OverrideRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OverrideRepository) FindByID(ctx context.Context, id uuid.UUID) (*override.PricingOverride, error) {
	row, err := r.queries.GetPricingOverride(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pricing override not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pricing override", err)
	}
	o, err := converter.OverrideFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert pricing override", err)
	}
	return o, nil
}

// Create fails with KindDuplicateKey when the customer already has an
// override for the same service and cleaning type.
func (r *OverrideRepository) Create(ctx context.Context, o *override.PricingOverride) error {
	if err := r.queries.CreatePricingOverride(ctx, r.db, converter.OverrideToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create pricing override", err)
	}
	return nil
}

func (r *OverrideRepository) Update(ctx context.Context, o *override.PricingOverride) error {
	n, err := r.queries.UpdatePricingOverride(ctx, r.db, converter.OverrideToUpdateParams(o))
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing override", err)
	}
	if n == 0 {
		return infra.NotFound("pricing override not found")
	}
	return nil
}

func (r *OverrideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeletePricingOverride(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pricing override", err)
	}
	if n == 0 {
		return infra.NotFound("pricing override not found")
	}
	return nil
}
