package shared

import (
	"context"
	"log/slog"

	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/metrics"
)

// RuleLoader reads active rules from a RuleStore and decodes them, skipping
// records that fail to decode.
type RuleLoader struct {
	store   RuleStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewRuleLoader(store RuleStore, logger *slog.Logger, m *metrics.Metrics) *RuleLoader {
	return &RuleLoader{store: store, logger: logger, metrics: m}
}

// LoadActive returns the decoded active rules of the given types, each type
// in display order. Any store failure aborts the load.
func (l *RuleLoader) LoadActive(ctx context.Context, types ...rule.Type) ([]rule.Rule, error) {
	var out []rule.Rule
	for _, t := range types {
		records, err := l.store.ListRules(ctx, t, true)
		if err != nil {
			l.metrics.StoreFailuresTotal.WithLabelValues("list_rules").Inc()
			return nil, MarkUnavailable(err)
		}
		for _, rec := range records {
			r, err := rule.Decode(rec)
			if err != nil {
				l.logger.WarnContext(ctx, "skipping malformed scheduling rule",
					"rule_id", rec.ID,
					"rule_type", string(rec.Type),
					"error", err.Error())
				l.metrics.MalformedRulesTotal.WithLabelValues(string(rec.Type)).Inc()
				continue
			}
			out = append(out, r)
		}
	}
	return out, nil
}
