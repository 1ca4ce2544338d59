package queries

import (
	"context"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

// RuleQueries backs the administrative listings. Records are returned as
// stored, malformed ones included, so they can be fixed.
type RuleQueries interface {
	ListRules(ctx context.Context, ruleType *rule.Type, activeOnly bool) ([]rule.Record, error)
	ListOverrides(ctx context.Context, customerID *uuid.UUID) ([]*override.PricingOverride, error)
}

type ruleQueriesImpl struct {
	store shared.RuleStore
}

func NewRuleQueries(store shared.RuleStore) RuleQueries {
	return &ruleQueriesImpl{store: store}
}

// ListRules lists one type, or every type grouped in rule.AllTypes order
// when ruleType is nil.
func (q *ruleQueriesImpl) ListRules(ctx context.Context, ruleType *rule.Type, activeOnly bool) ([]rule.Record, error) {
	types := rule.AllTypes()
	if ruleType != nil {
		types = []rule.Type{*ruleType}
	}

	out := []rule.Record{}
	for _, t := range types {
		records, err := q.store.ListRules(ctx, t, activeOnly)
		if err != nil {
			return nil, shared.MarkUnavailable(err)
		}
		out = append(out, records...)
	}
	return out, nil
}

func (q *ruleQueriesImpl) ListOverrides(ctx context.Context, customerID *uuid.UUID) ([]*override.PricingOverride, error) {
	overrides, err := q.store.ListOverrides(ctx, customerID)
	if err != nil {
		return nil, shared.MarkUnavailable(err)
	}
	return overrides, nil
}
