package queries

import (
	"context"
	"strings"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/pkg/metrics"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrServiceTypeRequired = errs.New("service type is required")

type RateRequest struct {
	CustomerID   uuid.UUID
	ServiceType  string
	CleaningType *string
	BaseRate     decimal.Decimal
}

type RateQueries interface {
	// ResolveRate applies the customer's most specific override to the base
	// rate. A request without a customer resolves to the base rate without
	// touching the store.
	ResolveRate(ctx context.Context, req RateRequest) (*override.Resolution, error)
}

type rateQueriesImpl struct {
	store   shared.RuleStore
	metrics *metrics.Metrics
}

func NewRateQueries(store shared.RuleStore, m *metrics.Metrics) RateQueries {
	return &rateQueriesImpl{store: store, metrics: m}
}

func (q *rateQueriesImpl) ResolveRate(ctx context.Context, req RateRequest) (*override.Resolution, error) {
	serviceType := strings.TrimSpace(req.ServiceType)
	if serviceType == "" {
		return nil, ErrServiceTypeRequired
	}

	if req.CustomerID == uuid.Nil {
		res := override.BaseResolution(req.BaseRate)
		return &res, nil
	}

	customerID := req.CustomerID
	overrides, err := q.store.ListOverrides(ctx, &customerID)
	if err != nil {
		q.metrics.StoreFailuresTotal.WithLabelValues("list_overrides").Inc()
		return nil, shared.MarkUnavailable(err)
	}

	res := override.Resolve(req.BaseRate, overrides, serviceType, req.CleaningType)
	return &res, nil
}
