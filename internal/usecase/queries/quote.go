package queries

import (
	"context"
	"log/slog"
	"time"

	"sncleaning-pricing/internal/domain/quote"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/config"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/pkg/metrics"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteRequest struct {
	CustomerID     uuid.UUID
	ServiceType    string
	CleaningType   *string
	Date           time.Time
	StartTime      rule.ClockTime
	DurationHours  decimal.Decimal
	BaseHourlyRate decimal.Decimal
}

type QuoteQueries interface {
	Evaluate(ctx context.Context, req QuoteRequest) (*quote.Quote, error)
}

var (
	scheduleRuleTypes = []rule.Type{rule.TypeTimeSlot, rule.TypeCutoffTime}
	pricingRuleTypes  = []rule.Type{rule.TypeDayPricing, rule.TypeTimeSurcharge, rule.TypeOvertimeWindow}
)

type quoteQueriesImpl struct {
	loader  *shared.RuleLoader
	rates   RateQueries
	timeout time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewQuoteQueries(loader *shared.RuleLoader, rates RateQueries, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) QuoteQueries {
	return &quoteQueriesImpl{
		loader:  loader,
		rates:   rates,
		timeout: cfg.Pricing.StoreTimeout,
		logger:  logger,
		metrics: m,
	}
}

// Evaluate checks the slot first and only resolves the customer's rate and
// loads pricing rules for bookable slots. All store reads share one deadline.
func (q *quoteQueriesImpl) Evaluate(ctx context.Context, req QuoteRequest) (*quote.Quote, error) {
	started := time.Now()
	defer func() { q.metrics.EvaluationDuration.Observe(time.Since(started).Seconds()) }()

	qreq := quote.Request{
		Date:          req.Date,
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
	}
	if err := qreq.Validate(); err != nil {
		q.metrics.QuotesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	scheduleRules, err := q.loader.LoadActive(ctx, scheduleRuleTypes...)
	if err != nil {
		return nil, q.storeFailure(ctx, err)
	}

	slot, err := quote.CheckSlot(quote.NewRuleSet(scheduleRules), qreq)
	if err != nil {
		q.metrics.QuotesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}
	if !slot.Bookable {
		q.metrics.QuotesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		rejected := quote.Rejected(slot)
		return &rejected, nil
	}

	rate, err := q.rates.ResolveRate(ctx, RateRequest{
		CustomerID:   req.CustomerID,
		ServiceType:  req.ServiceType,
		CleaningType: req.CleaningType,
		BaseRate:     req.BaseHourlyRate,
	})
	if err != nil {
		if errs.Is(err, shared.ErrRuleStoreUnavailable) {
			return nil, q.storeFailure(ctx, err)
		}
		q.metrics.QuotesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return nil, err
	}

	pricingRules, err := q.loader.LoadActive(ctx, pricingRuleTypes...)
	if err != nil {
		return nil, q.storeFailure(ctx, err)
	}

	set := quote.NewRuleSet(append(scheduleRules, pricingRules...))
	result := quote.Price(set, qreq, slot, *rate)

	outcome := metrics.OutcomeBookable
	if result.IsOvertime {
		outcome = metrics.OutcomeOvertime
	}
	q.metrics.QuotesTotal.WithLabelValues(outcome).Inc()
	return &result, nil
}

func (q *quoteQueriesImpl) storeFailure(ctx context.Context, err error) error {
	q.metrics.QuotesTotal.WithLabelValues(metrics.OutcomeStoreUnavailable).Inc()
	q.logger.ErrorContext(ctx, "quote evaluation aborted: rule store unavailable", "error", err.Error())
	return shared.MarkUnavailable(err)
}
