//go:build unit

package override_test

import (
	"testing"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/pkg/ptr"
	"sncleaning-pricing/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPricingOverride(t *testing.T) {
	t.Run("normalizes blank cleaning type to service-wide", func(t *testing.T) {
		o, err := builder.NewOverrideBuilder().WithCleaningType("  ").BuildDomain()
		require.NoError(t, err)
		assert.True(t, o.IsServiceWide())
		assert.Nil(t, o.CleaningType())
	})

	t.Run("trims service type", func(t *testing.T) {
		o, err := builder.NewOverrideBuilder().WithService(" domestic ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "domestic", o.ServiceType())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := builder.NewOverrideBuilder().WithService("").BuildDomain()
		require.ErrorIs(t, err, override.ErrEmptyServiceType)

		_, err = builder.NewOverrideBuilder().WithCustomer(uuid.Nil).BuildDomain()
		require.ErrorIs(t, err, override.ErrMissingCustomer)
	})
}

func TestResolve(t *testing.T) {
	base := decimal.NewFromInt(20)
	customer := uuid.New()

	serviceWide := builder.NewOverrideBuilder().WithCustomer(customer).WithRate("-3").MustBuildDomain()
	deepClean := builder.NewOverrideBuilder().WithCustomer(customer).WithCleaningType("deep").WithRate("5").MustBuildDomain()
	office := builder.NewOverrideBuilder().WithCustomer(customer).WithService("office").WithRate("2").MustBuildDomain()

	cases := []struct {
		name         string
		overrides    []*override.PricingOverride
		serviceType  string
		cleaningType *string
		wantRate     string
		wantApplied  *override.PricingOverride
	}{
		{
			name:     "no overrides returns base",
			wantRate: "20",
		},
		{
			name:         "service-wide applies to any cleaning type",
			overrides:    []*override.PricingOverride{serviceWide},
			serviceType:  "domestic",
			cleaningType: ptr.Of("deep"),
			wantRate:     "17",
			wantApplied:  serviceWide,
		},
		{
			name:         "exact cleaning type beats service-wide",
			overrides:    []*override.PricingOverride{serviceWide, deepClean},
			serviceType:  "domestic",
			cleaningType: ptr.Of("deep"),
			wantRate:     "25",
			wantApplied:  deepClean,
		},
		{
			name:         "exact match wins regardless of order",
			overrides:    []*override.PricingOverride{deepClean, serviceWide},
			serviceType:  "domestic",
			cleaningType: ptr.Of("deep"),
			wantRate:     "25",
			wantApplied:  deepClean,
		},
		{
			name:         "other cleaning type falls back to service-wide",
			overrides:    []*override.PricingOverride{serviceWide, deepClean},
			serviceType:  "domestic",
			cleaningType: ptr.Of("standard"),
			wantRate:     "17",
			wantApplied:  serviceWide,
		},
		{
			name:        "missing cleaning type only matches service-wide",
			overrides:   []*override.PricingOverride{deepClean},
			serviceType: "domestic",
			wantRate:    "20",
		},
		{
			name:        "other service is ignored",
			overrides:   []*override.PricingOverride{office},
			serviceType: "domestic",
			wantRate:    "20",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.serviceType
			if st == "" {
				st = "domestic"
			}
			res := override.Resolve(base, tc.overrides, st, tc.cleaningType)

			assert.True(t, decimal.RequireFromString(tc.wantRate).Equal(res.Rate), "rate %s", res.Rate)
			if tc.wantApplied == nil {
				assert.False(t, res.Applied)
				assert.Nil(t, res.OverrideID)
				return
			}
			assert.True(t, res.Applied)
			require.NotNil(t, res.OverrideID)
			assert.Equal(t, tc.wantApplied.ID(), *res.OverrideID)
		})
	}

	t.Run("negative effective rate is clamped to zero", func(t *testing.T) {
		big := builder.NewOverrideBuilder().WithRate("-30").MustBuildDomain()
		res := override.Resolve(base, []*override.PricingOverride{big}, "domestic", nil)

		assert.True(t, res.Applied)
		assert.True(t, res.Rate.IsZero())
		assert.True(t, decimal.NewFromInt(-30).Equal(res.Delta))
	})
}
