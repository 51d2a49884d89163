package bootstrap

import (
	"restaurant-reservations/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	SlotModule,
	components.UseCaseModule,
	components.HandlerModule,
)
