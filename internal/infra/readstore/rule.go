package readstore

import (
	"context"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/infra"
	"sncleaning-pricing/internal/infra/converter"
	"sncleaning-pricing/internal/infra/query"
	"sncleaning-pricing/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RuleReadQueries interface {
	ListSchedulingRules(ctx context.Context, db query.DBTX, arg query.ListSchedulingRulesParams) ([]query.SchedulingRule, error)
	ListPricingOverrides(ctx context.Context, db query.DBTX, customerID pgtype.UUID) ([]query.PricingOverride, error)
}

type RuleReadStore struct {
	queries RuleReadQueries
	db      query.DBTX
}

func NewRuleReadStore(queries RuleReadQueries, db query.DBTX) *RuleReadStore {
	return &RuleReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RuleReadStore) ListRules(ctx context.Context, ruleType rule.Type, activeOnly bool) ([]rule.Record, error) {
	rows, err := r.queries.ListSchedulingRules(ctx, r.db, query.ListSchedulingRulesParams{
		RuleType:   ruleType.String(),
		ActiveOnly: activeOnly,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduling rules", err)
	}

	records := make([]rule.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := converter.RuleFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert scheduling rule", err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *RuleReadStore) ListOverrides(ctx context.Context, customerID *uuid.UUID) ([]*override.PricingOverride, error) {
	rows, err := r.queries.ListPricingOverrides(ctx, r.db, pgconv.UUIDPtrToPgtype(customerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing overrides", err)
	}

	overrides := make([]*override.PricingOverride, 0, len(rows))
	for _, row := range rows {
		o, err := converter.OverrideFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert pricing override", err)
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}
