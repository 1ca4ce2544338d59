package repository

import (
	"context"

	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/infra"
	"sncleaning-pricing/internal/infra/converter"
	"sncleaning-pricing/internal/infra/query"
	"sncleaning-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RuleWriteQueries interface {
	GetSchedulingRule(ctx context.Context, db query.DBTX, id uuid.UUID) (query.SchedulingRule, error)
	CreateSchedulingRule(ctx context.Context, db query.DBTX, arg query.CreateSchedulingRuleParams) error
	UpdateSchedulingRule(ctx context.Context, db query.DBTX, arg query.UpdateSchedulingRuleParams) (int64, error)
	UpdateSchedulingRuleDisplayOrder(ctx context.Context, db query.DBTX, id uuid.UUID, displayOrder int32) (int64, error)
	DeleteSchedulingRule(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type RuleRepository struct {
	queries RuleWriteQueries
	db      query.DBTX
}

func NewRuleRepository(queries RuleWriteQueries, db query.DBTX) *RuleRepository {
	return &RuleRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*rule.Record, error) {
	row, err := r.queries.GetSchedulingRule(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("scheduling rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get scheduling rule", err)
	}
	rec, err := converter.RuleFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert scheduling rule", err)
	}
	return &rec, nil
}

func (r *RuleRepository) Create(ctx context.Context, rec rule.Record) error {
	if err := r.queries.CreateSchedulingRule(ctx, r.db, converter.RuleToCreateParams(rec)); err != nil {
		return infra.WrapRepoErr("failed to create scheduling rule", err)
	}
	return nil
}

func (r *RuleRepository) Update(ctx context.Context, rec rule.Record) error {
	n, err := r.queries.UpdateSchedulingRule(ctx, r.db, converter.RuleToUpdateParams(rec))
	if err != nil {
		return infra.WrapRepoErr("failed to update scheduling rule", err)
	}
	if n == 0 {
		return infra.NotFound("scheduling rule not found")
	}
	return nil
}

func (r *RuleRepository) UpdateDisplayOrder(ctx context.Context, id uuid.UUID, displayOrder int) error {
	n, err := r.queries.UpdateSchedulingRuleDisplayOrder(ctx, r.db, id, int32(displayOrder)) // #nosec G115 -- order is the position in a request list
	if err != nil {
		return infra.WrapRepoErr("failed to reorder scheduling rule", err)
	}
	if n == 0 {
		return infra.NotFound("scheduling rule not found")
	}
	return nil
}

func (r *RuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteSchedulingRule(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete scheduling rule", err)
	}
	if n == 0 {
		return infra.NotFound("scheduling rule not found")
	}
	return nil
}
