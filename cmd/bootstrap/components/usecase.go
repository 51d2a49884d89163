package components

import (
	"context"
	"log/slog"

	"restaurant-reservations/internal/pkg/clock"
	"restaurant-reservations/internal/pkg/config"
	"restaurant-reservations/internal/pkg/metrics"
	"restaurant-reservations/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseStoreModule,
	fx.Invoke(loadStore),
)

var usecaseBaseOption = fx.Provide(
	NewClock,
)

var usecaseStoreModule = fx.Module("usecase/store",
	fx.Provide(
		fx.Annotate(
			NewReservationStore,
			fx.As(fx.Self()),
			fx.As(new(usecase.ReservationCommands)),
			fx.As(new(usecase.ReservationQueries)),
		),
	),
)

// NewClock reads "today" in the restaurant's time zone.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := clock.LoadLocation(cfg.Store.TimeZone)
	if err != nil {
		return nil, err
	}
	return clock.NewRealClockIn(loc), nil
}

func NewReservationStore(slot usecase.Slot, clk clock.Clock, logger *slog.Logger, m *metrics.Metrics, cfg config.Config) *usecase.ReservationStore {
	return usecase.NewReservationStore(slot, clk, logger, usecase.StoreOptions{
		Key:     cfg.Store.Key,
		Timeout: cfg.Slot.Timeout,
		Metrics: m,
	})
}

// loadStore restores the collection before the server starts. An unreachable
// backend is not fatal: the service starts with an empty collection.
func loadStore(lc fx.Lifecycle, store *usecase.ReservationStore, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Load(ctx); err != nil {
				logger.Warn("starting with an empty reservation list", "error", err)
			}
			return nil
		},
	})
}
