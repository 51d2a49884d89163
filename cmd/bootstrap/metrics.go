package bootstrap

import (
	"restaurant-reservations/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) *metrics.Metrics {
			return metrics.NewMetrics(metrics.Namespace, reg)
		},
	),
)
