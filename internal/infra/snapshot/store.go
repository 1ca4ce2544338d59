package snapshot

import (
	"context"
	"os"
	"slices"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store serves rules and overrides from an immutable in-memory snapshot.
type Store struct {
	rules     map[rule.Type][]rule.Record
	overrides []*override.PricingOverride
}

// New copies records into a snapshot, grouped by type and stably sorted by
// display order.
func New(records []rule.Record, overrides []*override.PricingOverride) *Store {
	s := &Store{
		rules:     make(map[rule.Type][]rule.Record),
		overrides: slices.Clone(overrides),
	}
	for _, rec := range records {
		s.rules[rec.Type] = append(s.rules[rec.Type], rec)
	}
	for t := range s.rules {
		slices.SortStableFunc(s.rules[t], func(a, b rule.Record) int {
			return a.DisplayOrder - b.DisplayOrder
		})
	}
	return s
}

func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "read rules snapshot %s", path)
	}
	return Parse(data)
}

func (s *Store) ListRules(ctx context.Context, ruleType rule.Type, activeOnly bool) ([]rule.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]rule.Record, 0, len(s.rules[ruleType]))
	for _, rec := range s.rules[ruleType] {
		if activeOnly && !rec.IsActive {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *Store) ListOverrides(ctx context.Context, customerID *uuid.UUID) ([]*override.PricingOverride, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]*override.PricingOverride, 0, len(s.overrides))
	for _, o := range s.overrides {
		if customerID != nil && o.CustomerID() != *customerID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// Invalidate is a no-op; a snapshot never changes.
func (s *Store) Invalidate(context.Context) error { return nil }

// ReadOnlyUnitOfWork rejects every administrative write while the engine
// runs from a snapshot.
type ReadOnlyUnitOfWork struct{}

func (ReadOnlyUnitOfWork) Within(context.Context, func(ctx context.Context, tx shared.Tx) error) error {
	return shared.ErrReadOnlyStore
}
