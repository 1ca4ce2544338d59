package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pricing"

// Quote outcomes recorded by QuotesTotal.
const (
	OutcomeBookable         = "bookable"
	OutcomeOvertime         = "overtime"
	OutcomeRejected         = "rejected"
	OutcomeInvalid          = "invalid"
	OutcomeStoreUnavailable = "store_unavailable"
)

// Metrics holds Prometheus metrics for the rule engine.
type Metrics struct {
	// QuotesTotal is the number of quote evaluations by outcome.
	QuotesTotal *prometheus.CounterVec

	// MalformedRulesTotal is the number of stored rules skipped during evaluation.
	MalformedRulesTotal *prometheus.CounterVec

	// StoreFailuresTotal is the number of failed rule store reads.
	StoreFailuresTotal *prometheus.CounterVec

	// CacheResultsTotal is the number of rule cache lookups by result.
	CacheResultsTotal *prometheus.CounterVec

	// EvaluationDuration is the time spent evaluating one quote, store reads included.
	EvaluationDuration prometheus.Histogram
}

// New registers the metrics with reg. Tests pass a fresh prometheus.NewRegistry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		QuotesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quotes_total",
				Help:      "Total number of quote evaluations",
			},
			[]string{"outcome"},
		),

		MalformedRulesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "malformed_rules_total",
				Help:      "Total number of malformed scheduling rules skipped",
			},
			[]string{"rule_type"},
		),

		StoreFailuresTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rule_store_failures_total",
				Help:      "Total number of rule store reads that failed",
			},
			[]string{"operation"},
		),

		CacheResultsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rule_cache_results_total",
				Help:      "Total number of rule cache lookups",
			},
			[]string{"result"},
		),

		EvaluationDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "quote_evaluation_duration_seconds",
				Help:      "Time to evaluate a quote",
				Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 3},
			},
		),
	}
}

// NewNop returns metrics registered on a private registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}
