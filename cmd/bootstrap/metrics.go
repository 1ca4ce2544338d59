package bootstrap

import (
	"sncleaning-pricing/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// MetricsModule expects a prometheus.Registerer. The server supplies the
// default registry that /metrics serves; tests supply a fresh one.
var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
	),
)

func DefaultRegisterer() prometheus.Registerer {
	return prometheus.DefaultRegisterer
}
