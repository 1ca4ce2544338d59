package shared

import (
	"context"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRuleStoreUnavailable = errs.New("rule store unavailable")
	ErrReadOnlyStore        = errs.New("rule store is read-only")
)

// RuleStore is the read side of the rule data. Rules come back raw so that a
// malformed record can be skipped by the caller instead of failing the read.
type RuleStore interface {
	// ListRules returns rules of one type ordered by display order, ties in
	// insertion order. The slice is empty, not nil, when nothing matches.
	ListRules(ctx context.Context, ruleType rule.Type, activeOnly bool) ([]rule.Record, error)
	// ListOverrides returns the overrides of one customer, or of every
	// customer when customerID is nil.
	ListOverrides(ctx context.Context, customerID *uuid.UUID) ([]*override.PricingOverride, error)
}

// CacheInvalidator drops cached rule data after an administrative write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

// MarkUnavailable tags a store failure so callers can tell it apart from
// an empty result.
func MarkUnavailable(err error) error {
	if err == nil {
		return nil
	}
	return errs.Mark(err, ErrRuleStoreUnavailable)
}
