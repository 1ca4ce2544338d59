//go:build unit

package queries_test

import (
	"context"
	"testing"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/infra/snapshot"
	"sncleaning-pricing/internal/pkg/metrics"
	"sncleaning-pricing/internal/pkg/ptr"
	"sncleaning-pricing/internal/usecase/queries"
	"sncleaning-pricing/tests/common/builder"
	sharedmock "sncleaning-pricing/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRateQueries_ResolveRate(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	other := uuid.New()

	serviceWide := builder.NewOverrideBuilder().WithCustomer(customerID).WithService("domestic").WithRate("-3").MustBuildDomain()
	deep := builder.NewOverrideBuilder().WithCustomer(customerID).WithService("domestic").WithCleaningType("deep").WithRate("5").MustBuildDomain()
	huge := builder.NewOverrideBuilder().WithCustomer(customerID).WithService("airbnb").WithRate("-50").MustBuildDomain()
	otherCustomer := builder.NewOverrideBuilder().WithCustomer(other).WithService("domestic").WithRate("-10").MustBuildDomain()

	store := snapshot.New(nil, []*override.PricingOverride{serviceWide, deep, huge, otherCustomer})

	testCases := []struct {
		name        string
		req         queries.RateRequest
		wantRate    string
		wantApplied bool
		wantID      *uuid.UUID
	}{
		{
			name:        "exact cleaning type wins over service-wide",
			req:         queries.RateRequest{CustomerID: customerID, ServiceType: "domestic", CleaningType: ptr.Of("deep"), BaseRate: decimal.NewFromInt(20)},
			wantRate:    "25",
			wantApplied: true,
			wantID:      ptr.Of(deep.ID()),
		},
		{
			name:        "service-wide covers other cleaning types",
			req:         queries.RateRequest{CustomerID: customerID, ServiceType: "domestic", CleaningType: ptr.Of("standard"), BaseRate: decimal.NewFromInt(20)},
			wantRate:    "17",
			wantApplied: true,
			wantID:      ptr.Of(serviceWide.ID()),
		},
		{
			name:        "rate is clamped at zero",
			req:         queries.RateRequest{CustomerID: customerID, ServiceType: "airbnb", BaseRate: decimal.NewFromInt(20)},
			wantRate:    "0",
			wantApplied: true,
			wantID:      ptr.Of(huge.ID()),
		},
		{
			name:     "no override for the service",
			req:      queries.RateRequest{CustomerID: customerID, ServiceType: "end_of_tenancy", BaseRate: decimal.NewFromInt(20)},
			wantRate: "20",
		},
		{
			name:     "no customer",
			req:      queries.RateRequest{ServiceType: "domestic", BaseRate: decimal.NewFromInt(20)},
			wantRate: "20",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := queries.NewRateQueries(store, metrics.NewNop()).ResolveRate(ctx, tc.req)

			require.NoError(t, err)
			assert.Equal(t, tc.wantRate, got.Rate.String())
			assert.Equal(t, tc.wantApplied, got.Applied)
			assert.Equal(t, tc.wantID, got.OverrideID)
		})
	}
}

func TestRateQueries_ResolveRate_RequiresServiceType(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockRuleStore(ctrl)

	_, err := queries.NewRateQueries(store, metrics.NewNop()).ResolveRate(context.Background(), queries.RateRequest{
		CustomerID:  uuid.New(),
		ServiceType: "  ",
	})

	require.ErrorIs(t, err, queries.ErrServiceTypeRequired)
}
